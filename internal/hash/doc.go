// Package hash provides the content checksum recorded in dataset manifests.
//
// All checksums use CRC32-Castagnoli (CRC32C), which Go's hash/crc32 computes
// with SSE4.2 or the ARM CRC extension when available.
//
// For streaming checksums over generated records:
//
//	d := hash.NewDigest()
//	d.Write(line)
//	sum, n := d.Sum32(), d.Len()
package hash
