// Package codec centralizes the text encoding of generated records.
//
// The on-disk layout is fixed by the downstream LSH and hypercube readers:
// a record is its id followed by its coordinates, and every field, including
// the last coordinate, is terminated by the separator before the newline.
//
//	0\t41.67\t7.5\t\n
//	1\t99.0\t0.11\t\n
package codec

import (
	"errors"
	"strconv"
)

// ErrMalformedRecord is returned when a line cannot be parsed as a record.
var ErrMalformedRecord = errors.New("malformed record")

// Record is one generated vector.
type Record struct {
	ID     int
	Coords []float64
}

// Dim returns the number of coordinates.
func (r Record) Dim() int { return len(r.Coords) }

// Codec encodes and decodes records as single text lines.
// Implementations must be safe for concurrent use.
type Codec interface {
	// AppendRecord appends the encoded record, including the trailing newline, to dst.
	AppendRecord(dst []byte, rec Record) []byte
	// ParseRecord decodes a single line. A trailing newline is optional.
	ParseRecord(line []byte) (Record, error)
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "tsv":
		return TSV, true
	case "csv":
		return CSV, true
	default:
		return nil, false
	}
}

// Default is the codec used for generated datasets.
var Default Codec = TSV

// AppendFloat appends the shortest decimal text that round-trips v.
// Integral values keep a ".0" suffix so 100 is written as "100.0"; tiny values
// switch to exponent form ("1e-05").
func AppendFloat(dst []byte, v float64) []byte {
	start := len(dst)
	dst = strconv.AppendFloat(dst, v, 'g', -1, 64)
	for _, c := range dst[start:] {
		switch c {
		case '.', 'e', 'N', 'I':
			return dst
		}
	}
	return append(dst, '.', '0')
}
