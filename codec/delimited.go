package codec

import (
	"bytes"
	"fmt"
	"strconv"
)

var (
	// TSV separates fields with a tab. It is the format the search tools read.
	TSV = Delimited{Sep: '\t', name: "tsv"}
	// CSV separates fields with a comma.
	CSV = Delimited{Sep: ',', name: "csv"}
)

// Delimited writes each field followed by Sep.
type Delimited struct {
	Sep  byte
	name string
}

// AppendRecord encodes rec as "<id>SEP<c1>SEP...<cd>SEP\n".
func (d Delimited) AppendRecord(dst []byte, rec Record) []byte {
	dst = strconv.AppendInt(dst, int64(rec.ID), 10)
	dst = append(dst, d.Sep)
	for _, c := range rec.Coords {
		dst = AppendFloat(dst, c)
		dst = append(dst, d.Sep)
	}
	return append(dst, '\n')
}

// ParseRecord decodes a line written by AppendRecord. The trailing separator
// may be missing.
func (d Delimited) ParseRecord(line []byte) (Record, error) {
	line = bytes.TrimRight(line, "\r\n")
	line = bytes.TrimSuffix(line, []byte{d.Sep})
	if len(line) == 0 {
		return Record{}, fmt.Errorf("%w: empty line", ErrMalformedRecord)
	}

	fields := bytes.Split(line, []byte{d.Sep})

	id, err := strconv.Atoi(string(fields[0]))
	if err != nil {
		return Record{}, fmt.Errorf("%w: id %q", ErrMalformedRecord, fields[0])
	}

	rec := Record{ID: id, Coords: make([]float64, 0, len(fields)-1)}
	for i, f := range fields[1:] {
		v, err := strconv.ParseFloat(string(f), 64)
		if err != nil {
			return Record{}, fmt.Errorf("%w: record %d coordinate %d: %q", ErrMalformedRecord, id, i, f)
		}
		rec.Coords = append(rec.Coords, v)
	}
	return rec, nil
}

// Name returns the stable codec name.
func (d Delimited) Name() string {
	if d.name == "" {
		return fmt.Sprintf("delimited(%q)", d.Sep)
	}
	return d.name
}
