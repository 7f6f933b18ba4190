// Package archive stores calibration records in a compact binary format.
//
// # Layout
//
// A record is a fixed 32-byte header followed by a payload:
//
//	offset  size  field
//	0       4     magic "CFIT"
//	4       1     format version (1)
//	5       1     flags: bit 0 big-endian, bits 4-7 compression type
//	6       1     polynomial degree
//	7       1     fit direction
//	8       8     sensor ID, xxHash64 of the sensor name
//	16      4     training sample count
//	20      4     validation sample count
//	24      4     stored payload length
//	28      4     CRC-32 (IEEE) of the stored payload
//
// Multi-byte header fields and all payload values use the byte order named by
// the flags. The payload, compressed as a whole by the selected codec, holds:
//
//	sensor name      uvarint length + UTF-8 bytes
//	created at       int64 unix microseconds
//	coefficients     degree+1 float64 values
//	training set     X column then Y column
//	validation set   X column then Y column
//
// # Usage
//
//	data, err := archive.Encode(rec, archive.WithCompression(format.CompressionZstd))
//	...
//	rec, err := archive.Decode(data)
//
// Decode verifies the magic number, version, checksum, payload length and the
// sensor ID before returning a record.
package archive
