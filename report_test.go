package vecgen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintConfig(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintConfig(&buf, Config{Output: "input_small", Dimension: 128, Records: 1000}))

	want := Banner + "\n\n" +
		"Running with the following configuration\n" +
		"\t output --> input_small\n" +
		"\t dimension --> 128\n" +
		"\t records --> 1000\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}
