package vecgen

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/hupe1980/vecgen/codec"
	"github.com/hupe1980/vecgen/internal/compress"
	"github.com/hupe1980/vecgen/internal/hash"
	"github.com/hupe1980/vecgen/manifest"
)

// Stats summarizes a dataset file.
type Stats struct {
	Records   int
	Dimension int
	// Min and Max are the extreme coordinate values; both are 0 when the file
	// holds no coordinates.
	Min float64
	Max float64
	// Bytes is the size of the file on disk, compressed if it was written so.
	Bytes int64
	// Manifest is the sidecar the file was checked against, or nil.
	Manifest *manifest.Manifest
}

// Inspect reads the dataset at path (not relative to the output directory)
// using the generator's filesystem, codec and compression.
//
// Like the search tools, it takes the record count from the number of lines
// and the dimension from the first line. Every other line must share that
// dimension and ids must run 0..n-1.
//
// If a manifest sidecar exists next to path, its codec and compression are
// used instead of the generator's, and the content must match its record
// count and CRC32C.
func (g *Generator) Inspect(ctx context.Context, path string) (stats *Stats, err error) {
	log := g.opts.logger.WithPath(path)
	defer func() { log.LogInspect(ctx, stats, err) }()

	m, err := g.readManifest(path)
	if err != nil {
		return nil, err
	}

	kind, c := g.opts.compression, g.opts.codec
	if m != nil {
		if kind, err = compress.Parse(m.Compression); err != nil {
			return nil, fmt.Errorf("manifest: %w", err)
		}
		var ok bool
		if c, ok = codec.ByName(m.Codec); !ok {
			return nil, fmt.Errorf("manifest: %w: %q", ErrUnknownCodec, m.Codec)
		}
	}

	f, err := g.opts.fs.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat dataset: %w", err)
	}

	zr, err := compress.NewReader(kind, f)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	digest := hash.NewDigest()
	stats, err = InspectReader(ctx, io.TeeReader(zr, digest), c)
	if err != nil {
		return nil, err
	}
	stats.Bytes = info.Size()

	if m != nil {
		if stats.Records != m.Records {
			return nil, fmt.Errorf("%w: %d records, manifest has %d", ErrManifestMismatch, stats.Records, m.Records)
		}
		if digest.Len() != m.Size || digest.Sum32() != m.CRC32C {
			return nil, fmt.Errorf("%w: crc32c %08x over %d bytes, manifest has %08x over %d bytes",
				ErrManifestMismatch, digest.Sum32(), digest.Len(), m.CRC32C, m.Size)
		}
		stats.Manifest = m
	}
	return stats, nil
}

// readManifest returns the sidecar of path, or nil if there is none.
func (g *Generator) readManifest(path string) (*manifest.Manifest, error) {
	name := manifest.FileName(path)
	if _, err := g.opts.fs.Stat(name); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat manifest: %w", err)
	}

	f, err := g.opts.fs.OpenFile(name, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	m, err := manifest.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}

// InspectReader is Inspect over an already opened, uncompressed stream.
// If c is nil, codec.Default is used.
func InspectReader(ctx context.Context, r io.Reader, c codec.Codec) (*Stats, error) {
	if c == nil {
		c = codec.Default
	}

	br := bufio.NewReaderSize(r, 64<<10)
	stats := &Stats{Min: math.Inf(1), Max: math.Inf(-1)}

	for line := 1; ; line++ {
		if (line-1)%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		raw, readErr := br.ReadBytes('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("failed to read dataset: %w", readErr)
		}

		if len(raw) > 0 {
			rec, err := c.ParseRecord(raw)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			if rec.ID != stats.Records {
				return nil, &ErrUnexpectedID{Line: line, Expected: stats.Records, Actual: rec.ID}
			}
			if stats.Records == 0 {
				stats.Dimension = rec.Dim()
			} else if rec.Dim() != stats.Dimension {
				return nil, &ErrDimensionMismatch{Line: line, Expected: stats.Dimension, Actual: rec.Dim()}
			}
			for _, v := range rec.Coords {
				stats.Min = min(stats.Min, v)
				stats.Max = max(stats.Max, v)
			}
			stats.Records++
		}

		if readErr != nil {
			break
		}
	}

	if stats.Records == 0 || stats.Dimension == 0 {
		stats.Min, stats.Max = 0, 0
	}
	return stats, nil
}
