// Package manifest describes a generated dataset in a YAML sidecar file.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-yaml"
)

const (
	// Suffix is appended to the dataset file name to form the sidecar name.
	Suffix = ".manifest.yaml"
	// CurrentVersion is the version of the manifest format.
	CurrentVersion = 1
)

// ErrIncompatibleVersion is returned when the manifest version is not supported.
var ErrIncompatibleVersion = errors.New("incompatible manifest version")

// Manifest records how a dataset file was produced.
type Manifest struct {
	Version      int       `yaml:"version"`
	File         string    `yaml:"file"`
	CreatedAt    time.Time `yaml:"created_at"`
	Dimension    int       `yaml:"dimension"`
	Records      int       `yaml:"records"`
	Distribution string    `yaml:"distribution"`
	Lower        float64   `yaml:"lower"`
	Upper        float64   `yaml:"upper"`
	Seed         int64     `yaml:"seed"`
	Codec        string    `yaml:"codec"`
	Compression  string    `yaml:"compression"`
	// Size and CRC32C cover the uncompressed record text.
	Size   int64  `yaml:"size"`
	CRC32C uint32 `yaml:"crc32c"`
}

// FileName returns the sidecar name for a dataset file.
func FileName(dataset string) string {
	return dataset + Suffix
}

// Encode writes m as YAML.
func (m *Manifest) Encode(w io.Writer) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Decode reads a YAML manifest and checks its version.
func Decode(r io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if m.Version != CurrentVersion {
		return nil, fmt.Errorf("%w: %d", ErrIncompatibleVersion, m.Version)
	}
	return &m, nil
}
