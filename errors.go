package vecgen

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vecgen/codec"
	"github.com/hupe1980/vecgen/internal/compress"
)

var (
	// ErrInvalidBounds is returned when the value bounds are not finite or lower > upper.
	ErrInvalidBounds = errors.New("invalid value bounds")

	// ErrUnknownCompression is returned for an unsupported compression name.
	ErrUnknownCompression = compress.ErrUnknown

	// ErrUnknownCodec is returned when a manifest names a codec that is not built in.
	ErrUnknownCodec = errors.New("unknown codec")

	// ErrManifestMismatch is returned by Inspect when a file disagrees with its manifest.
	ErrManifestMismatch = errors.New("dataset does not match manifest")

	// ErrMalformedRecord is returned by Inspect for a line that is not a record.
	ErrMalformedRecord = codec.ErrMalformedRecord
)

// ErrDimensionMismatch indicates a record whose dimension differs from the
// first record of the file.
type ErrDimensionMismatch struct {
	Line     int
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("line %d: dimension mismatch: expected %d, got %d", e.Line, e.Expected, e.Actual)
}

// ErrUnexpectedID indicates a record id that breaks the 0..n-1 sequence.
type ErrUnexpectedID struct {
	Line     int
	Expected int
	Actual   int
}

func (e *ErrUnexpectedID) Error() string {
	return fmt.Sprintf("line %d: unexpected id: expected %d, got %d", e.Line, e.Expected, e.Actual)
}
