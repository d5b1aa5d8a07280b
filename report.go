package vecgen

import (
	"fmt"
	"io"
	"strings"
)

// Banner is the title printed above the configuration.
const Banner = "---------------------- Vectors Input File Generator ----------------------"

// PrintConfig writes a human-readable summary of cfg to w: the banner followed
// by one "<field> --> <value>" line per field in the order output, dimension,
// records.
func PrintConfig(w io.Writer, cfg Config) error {
	var b strings.Builder

	b.WriteString(Banner)
	b.WriteString("\n\n")
	b.WriteString("Running with the following configuration\n")
	fmt.Fprintf(&b, "\t output --> %s\n", cfg.Output)
	fmt.Fprintf(&b, "\t dimension --> %d\n", cfg.Dimension)
	fmt.Fprintf(&b, "\t records --> %d\n", cfg.Records)
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
