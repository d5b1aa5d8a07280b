// Package compress wraps dataset output and input streams in an optional
// compression codec.
package compress

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Kind names a compression codec.
type Kind string

const (
	// None writes plain text.
	None Kind = "none"
	// Gzip writes a gzip stream.
	Gzip Kind = "gzip"
	// Zstd writes a zstd stream (better ratio, good for archived datasets).
	Zstd Kind = "zstd"
	// LZ4 writes an lz4 frame (fast, good for scratch datasets).
	LZ4 Kind = "lz4"
)

// ErrUnknown is returned for an unsupported compression name.
var ErrUnknown = errors.New("unknown compression")

// Kinds lists the supported codecs in display order.
func Kinds() []Kind {
	return []Kind{None, Gzip, Zstd, LZ4}
}

// Parse resolves a codec by name. The empty string means None.
func Parse(name string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(name))); k {
	case "":
		return None, nil
	case None, Gzip, Zstd, LZ4:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknown, name)
	}
}

func (k Kind) String() string { return string(k) }

// NewWriter wraps w with the codec. Closing the returned writer flushes the
// codec but never closes w.
func NewWriter(k Kind, w io.Writer) (io.WriteCloser, error) {
	switch k {
	case None, "":
		return nopWriteCloser{w}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		return enc, nil
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknown, string(k))
	}
}

// NewReader wraps r with the codec. Closing the returned reader releases
// codec resources but never closes r.
func NewReader(k Kind, r io.Reader) (io.ReadCloser, error) {
	switch k {
	case None, "":
		return io.NopCloser(r), nil
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return zr, nil
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		return dec.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknown, string(k))
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
