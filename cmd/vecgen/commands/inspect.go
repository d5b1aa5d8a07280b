package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecgen"
	"github.com/hupe1980/vecgen/codec"
)

func newInspectCommand(verbose *bool) *cobra.Command {
	var compression string

	cmd := &cobra.Command{
		Use:   "inspect <path>",
		Short: "Report record count, dimension and value range of a dataset",
		Long: `Read a dataset the way the search tools do: the record count is the
number of lines and the dimension is the number of values on the first
line after the id. Fails if any line has a different dimension or the
ids are not 0, 1, ..., n-1.

If <path>.manifest.yaml exists, the file is decoded with the codec and
compression it names and must match its record count and CRC32C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := vecgen.ParseCompression(compression)
			if err != nil {
				return &UsageError{Err: err}
			}
			cmd.SilenceUsage = true

			gen, err := vecgen.New(
				vecgen.WithLogger(newLogger(cmd.ErrOrStderr(), *verbose)),
				vecgen.WithCompression(kind),
			)
			if err != nil {
				return err
			}

			stats, err := gen.Inspect(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path --> %s\n", args[0])
			fmt.Fprintf(out, "records --> %d\n", stats.Records)
			fmt.Fprintf(out, "dimension --> %d\n", stats.Dimension)
			fmt.Fprintf(out, "min --> %s\n", codec.AppendFloat(nil, stats.Min))
			fmt.Fprintf(out, "max --> %s\n", codec.AppendFloat(nil, stats.Max))
			fmt.Fprintf(out, "bytes --> %d\n", stats.Bytes)
			if stats.Manifest != nil {
				fmt.Fprintf(out, "crc32c --> %08x (matches manifest)\n", stats.Manifest.CRC32C)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&compression, "compress", "none", "compression the file was written with: none, gzip, zstd or lz4 (a manifest sidecar overrides it)")
	return cmd
}
