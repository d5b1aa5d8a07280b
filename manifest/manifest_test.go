package manifest

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	m := &Manifest{
		Version:      CurrentVersion,
		File:         "input_small",
		CreatedAt:    time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
		Dimension:    128,
		Records:      1000,
		Distribution: "uniform",
		Lower:        0,
		Upper:        100,
		Seed:         4711,
		Codec:        "tsv",
		Compression:  "none",
		Size:         123456,
		CRC32C:       0xdeadbeef,
	}

	var buf bytes.Buffer
	require.NoError(t, m.Encode(&buf))
	assert.Contains(t, buf.String(), "dimension: 128")
	assert.Contains(t, buf.String(), "distribution: uniform")

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, m.File, got.File)
	assert.Equal(t, m.Dimension, got.Dimension)
	assert.Equal(t, m.Records, got.Records)
	assert.Equal(t, m.Upper, got.Upper)
	assert.Equal(t, m.Seed, got.Seed)
	assert.Equal(t, m.CRC32C, got.CRC32C)
	assert.True(t, m.CreatedAt.Equal(got.CreatedAt))
}

func TestDecodeVersion(t *testing.T) {
	_, err := Decode(strings.NewReader("version: 99\nfile: x\n"))
	assert.ErrorIs(t, err, ErrIncompatibleVersion)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("version: [1\n"))
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "input_small.manifest.yaml", FileName("input_small"))
}
