package vecgen

import (
	"log/slog"
	"time"

	"github.com/hupe1980/vecgen/codec"
	"github.com/hupe1980/vecgen/internal/compress"
	"github.com/hupe1980/vecgen/internal/fs"
)

const (
	// DefaultDir is the directory datasets are written to.
	DefaultDir = "datasets/vectors/"
	// DefaultLower is the smallest coordinate value.
	DefaultLower = 0.00
	// DefaultUpper is the largest coordinate value.
	DefaultUpper = 100.00
)

// Compression selects an optional codec for the dataset file.
type Compression = compress.Kind

// Supported compressions.
const (
	CompressionNone = compress.None
	CompressionGzip = compress.Gzip
	CompressionZstd = compress.Zstd
	CompressionLZ4  = compress.LZ4
)

// ParseCompression resolves a compression by name ("none", "gzip", "zstd", "lz4").
func ParseCompression(name string) (Compression, error) {
	return compress.Parse(name)
}

type options struct {
	dir         string
	fs          fs.FileSystem
	seed        int64
	seeded      bool
	lower       float64
	upper       float64
	codec       codec.Codec
	compression Compression
	manifest    bool
	logger      *Logger
	now         func() time.Time
}

// Option configures a Generator.
type Option func(*options)

// WithDir sets the output directory. Defaults to DefaultDir.
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// WithFileSystem replaces the filesystem used for all reads and writes.
// If nil is passed, the local filesystem is used.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		if fsys == nil {
			fsys = fs.Default
		}
		o.fs = fsys
	}
}

// WithSeed fixes the random seed so that equal configs produce identical files.
// Without it the seed is taken from the clock.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithBounds sets the closed interval coordinates are drawn from.
// Defaults to [DefaultLower, DefaultUpper].
func WithBounds(lower, upper float64) Option {
	return func(o *options) {
		o.lower = lower
		o.upper = upper
	}
}

// WithCodec sets the record encoding.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression wraps the dataset file in the given codec.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithManifest enables writing a YAML sidecar next to every dataset.
func WithManifest(enabled bool) Option {
	return func(o *options) {
		o.manifest = enabled
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := vecgen.NewJSONLogger(slog.LevelInfo)
//	gen, _ := vecgen.New(vecgen.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		dir:         DefaultDir,
		fs:          fs.Default,
		lower:       DefaultLower,
		upper:       DefaultUpper,
		codec:       codec.Default,
		compression: CompressionNone,
		logger:      NoopLogger(),
		now:         time.Now,
	}
	for _, fn := range optFns {
		fn(&o)
	}
	if !o.seeded {
		o.seed = o.now().UnixNano()
	}
	return o
}
