package vecgen

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/hupe1980/vecgen/codec"
	"github.com/hupe1980/vecgen/internal/compress"
	"github.com/hupe1980/vecgen/internal/hash"
	"github.com/hupe1980/vecgen/internal/random"
	"github.com/hupe1980/vecgen/manifest"
)

// ctxCheckInterval is how many records are written between context checks.
const ctxCheckInterval = 1024

// Config describes one dataset.
type Config struct {
	// Output is the file name, relative to the output directory.
	Output string
	// Dimension is the number of coordinates per record.
	Dimension int
	// Records is the number of lines to write.
	Records int
}

// Result describes a written dataset.
type Result struct {
	Path         string
	ManifestPath string // empty unless manifests are enabled
	Records      int
	Dimension    int
	Seed         int64
	Compression  Compression
	// Size and CRC32C cover the uncompressed record text.
	Size    int64
	CRC32C  uint32
	Elapsed time.Duration
}

// Generator writes random vector datasets.
type Generator struct {
	opts options
	rng  *random.RNG
}

// New creates a Generator.
func New(optFns ...Option) (*Generator, error) {
	o := applyOptions(optFns)

	if math.IsNaN(o.lower) || math.IsNaN(o.upper) || math.IsInf(o.lower, 0) || math.IsInf(o.upper, 0) || o.lower > o.upper {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidBounds, o.lower, o.upper)
	}
	if _, err := compress.Parse(o.compression.String()); err != nil {
		return nil, err
	}

	return &Generator{
		opts: o,
		rng:  random.NewRNG(o.seed),
	}, nil
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() int64 {
	return g.rng.Seed()
}

// Path returns where a dataset named name is written.
func (g *Generator) Path(name string) string {
	return filepath.Join(g.opts.dir, name)
}

// Generate writes cfg.Records records of cfg.Dimension uniform coordinates.
//
// The output directory is created if missing and an existing file is
// truncated. On error the partially written file is left in place.
// Negative counts behave like zero.
func (g *Generator) Generate(ctx context.Context, cfg Config) (res *Result, err error) {
	start := g.opts.now()
	path := g.Path(cfg.Output)

	log := g.opts.logger.WithPath(path).WithDimension(cfg.Dimension).WithCount(cfg.Records)
	defer func() { log.LogGenerate(ctx, res, err) }()

	log.DebugContext(ctx, "generating dataset", "seed", g.Seed())

	if err := g.opts.fs.MkdirAll(g.opts.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	digest, err := g.writeDataset(ctx, path, cfg)
	if err != nil {
		return nil, err
	}

	res = &Result{
		Path:        path,
		Records:     max(cfg.Records, 0),
		Dimension:   max(cfg.Dimension, 0),
		Seed:        g.Seed(),
		Compression: g.opts.compression,
		Size:        digest.Len(),
		CRC32C:      digest.Sum32(),
	}

	if g.opts.manifest {
		res.ManifestPath = manifest.FileName(path)
		err := g.writeManifest(res, start)
		log.LogManifest(ctx, res.ManifestPath, err)
		if err != nil {
			return nil, err
		}
	}

	res.Elapsed = g.opts.now().Sub(start)
	return res, nil
}

func (g *Generator) writeDataset(ctx context.Context, path string, cfg Config) (_ *hash.Digest, err error) {
	f, err := g.opts.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	return g.writeRecords(ctx, f, cfg)
}

func (g *Generator) writeRecords(ctx context.Context, w io.Writer, cfg Config) (_ *hash.Digest, err error) {
	zw, err := compress.NewWriter(g.opts.compression, w)
	if err != nil {
		return nil, err
	}
	// The encoder is released on every path; its error only matters when
	// nothing failed before it.
	defer func() {
		if cerr := zw.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to finish %s stream: %w", g.opts.compression, cerr)
		}
	}()

	bw := bufio.NewWriterSize(zw, 64<<10)
	digest := hash.NewDigest()

	if cfg.Records <= 0 {
		return digest, nil
	}

	coords := make([]float64, max(cfg.Dimension, 0))
	var line []byte

	for i := 0; i < cfg.Records; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		g.rng.FillUniform(coords, g.opts.lower, g.opts.upper)
		line = g.opts.codec.AppendRecord(line[:0], codec.Record{ID: i, Coords: coords})
		digest.Write(line)

		if _, err := bw.Write(line); err != nil {
			return nil, fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush output file: %w", err)
	}
	return digest, nil
}

func (g *Generator) writeManifest(res *Result, createdAt time.Time) error {
	m := &manifest.Manifest{
		Version:      manifest.CurrentVersion,
		File:         filepath.Base(res.Path),
		CreatedAt:    createdAt.UTC(),
		Dimension:    res.Dimension,
		Records:      res.Records,
		Distribution: "uniform",
		Lower:        g.opts.lower,
		Upper:        g.opts.upper,
		Seed:         res.Seed,
		Codec:        g.opts.codec.Name(),
		Compression:  res.Compression.String(),
		Size:         res.Size,
		CRC32C:       res.CRC32C,
	}

	f, err := g.opts.fs.OpenFile(res.ManifestPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open manifest: %w", err)
	}
	if err := m.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync manifest: %w", err)
	}
	return f.Close()
}
