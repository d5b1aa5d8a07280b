package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecgen"
)

// UsageError marks a command line error: a missing, unknown or malformed
// flag or argument.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// rootFlags holds the values bound to the root command's flags.
type rootFlags struct {
	output      string
	dimension   decimalInt
	records     decimalInt
	seed        int64
	compression string
	manifest    bool
	verbose     bool
}

// NewRootCommand builds the vecgen command tree.
func NewRootCommand() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "vecgen --o <file> --d <dimension> --n <records>",
		Short: "Vectors input file generator",
		Long: `vecgen writes search input files for the LSH and hypercube tools.

The file datasets/vectors/<file> gets <records> lines. Each line is a
zero-based id followed by <dimension> values drawn uniformly from
[0.00, 100.00], every field terminated by a tab.

Examples:
  # 1000 vectors of dimension 128
  vecgen --o input_small --d 128 --n 1000

  # reproducible, compressed, with a manifest sidecar
  vecgen --o input_big --d 256 --n 1000000 --seed 42 --compress zstd --manifest

  # check a file the way the search tools read it
  vecgen inspect datasets/vectors/input_small`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.output, "o", "", "name of the output file, written under "+vecgen.DefaultDir)
	cmd.Flags().Var(&f.dimension, "d", "dimension of the vector space (plain base-10 integer)")
	cmd.Flags().Var(&f.records, "n", "number of vectors (plain base-10 integer)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (default derived from the clock)")
	cmd.Flags().StringVar(&f.compression, "compress", "none", "output compression: none, gzip, zstd or lz4")
	cmd.Flags().BoolVar(&f.manifest, "manifest", false, "also write <file>.manifest.yaml")
	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")

	for _, name := range []string{"o", "d", "n"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	cmd.AddCommand(newInspectCommand(&f.verbose))
	return cmd
}

// Execute runs the CLI against the process arguments.
func Execute() error {
	return Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the command tree with the given arguments and streams.
// Errors raised before a command starts working are returned as *UsageError.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}

	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return nil
	}

	var usageErr *UsageError
	if !errors.As(err, &usageErr) && !cmd.SilenceUsage {
		return &UsageError{Err: err}
	}
	return err
}

func runGenerate(cmd *cobra.Command, f *rootFlags) error {
	kind, err := vecgen.ParseCompression(f.compression)
	if err != nil {
		return &UsageError{Err: err}
	}

	// Flags are valid; from here on errors are not usage errors.
	cmd.SilenceUsage = true

	cfg := vecgen.Config{
		Output:    f.output,
		Dimension: int(f.dimension),
		Records:   int(f.records),
	}

	if err := vecgen.PrintConfig(cmd.OutOrStdout(), cfg); err != nil {
		return err
	}

	opts := []vecgen.Option{
		vecgen.WithLogger(newLogger(cmd.ErrOrStderr(), f.verbose)),
		vecgen.WithCompression(kind),
		vecgen.WithManifest(f.manifest),
	}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, vecgen.WithSeed(f.seed))
	}

	gen, err := vecgen.New(opts...)
	if err != nil {
		return err
	}

	_, err = gen.Generate(cmd.Context(), cfg)
	return err
}

func newLogger(w io.Writer, verbose bool) *vecgen.Logger {
	if !verbose {
		return vecgen.NoopLogger()
	}
	return vecgen.NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
