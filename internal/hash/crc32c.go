package hash

import (
	"hash"
	"hash/crc32"
)

var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// Digest is an io.Writer that tracks the CRC32C and length of everything
// written to it. It never returns an error.
type Digest struct {
	h hash.Hash32
	n int64
}

// NewDigest returns an empty Digest.
func NewDigest() *Digest {
	return &Digest{h: crc32.New(crc32cTable)}
}

func (d *Digest) Write(p []byte) (int, error) {
	d.h.Write(p)
	d.n += int64(len(p))
	return len(p), nil
}

// Sum32 returns the checksum of the bytes written so far.
func (d *Digest) Sum32() uint32 { return d.h.Sum32() }

// Len returns the number of bytes written so far.
func (d *Digest) Len() int64 { return d.n }
