package archive

import (
	"fmt"

	"github.com/arloliu/calfit/calibration"
	"github.com/arloliu/calfit/endian"
	"github.com/arloliu/calfit/errs"
	"github.com/arloliu/calfit/format"
)

const (
	// HeaderSize is the fixed header size in bytes.
	HeaderSize = 32
	// Version is the current format version.
	Version = 1
	// MaxDegree is the largest degree the one-byte header field can hold.
	MaxDegree = 255

	// Flag bits
	BigEndianMask   = 0x01 // Mask for endianness bit (bit 0)
	ReservedMask    = 0x0E // Mask for reserved bits (bits 1-3), must be zero
	CompressionMask = 0xF0 // Mask for compression type (bits 4-7)
)

// Magic is the four-byte signature at the start of every record.
var Magic = [4]byte{'C', 'F', 'I', 'T'}

// Header is the fixed-size header of a calibration record.
type Header struct {
	Version   uint8                 // byte offset 4
	Flags     uint8                 // byte offset 5
	Degree    uint8                 // byte offset 6
	Direction calibration.Direction // byte offset 7
	SensorID  uint64                // byte offset 8-15
	// TrainCount and ValidCount are the sample counts of the two datasets.
	TrainCount uint32 // byte offset 16-19
	ValidCount uint32 // byte offset 20-23
	// PayloadLength is the size of the stored, possibly compressed, payload.
	PayloadLength uint32 // byte offset 24-27
	// Checksum is the CRC-32 (IEEE) of the stored payload.
	Checksum uint32 // byte offset 28-31
}

// IsBigEndian returns whether multi-byte fields are big-endian.
func (h Header) IsBigEndian() bool {
	return h.Flags&BigEndianMask != 0
}

// Compression returns the payload compression type.
func (h Header) Compression() format.CompressionType {
	return format.CompressionType(h.Flags >> 4)
}

// Engine returns the byte order engine selected by the flags.
func (h Header) Engine() endian.EndianEngine {
	if h.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

func (h *Header) setFlags(bigEndian bool, compression format.CompressionType) {
	h.Flags = uint8(compression) << 4
	if bigEndian {
		h.Flags |= BigEndianMask
	}
}

// Bytes serializes the header.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := h.Engine()

	copy(b[0:4], Magic[:])
	b[4] = h.Version
	b[5] = h.Flags
	b[6] = h.Degree
	b[7] = uint8(h.Direction)
	engine.PutUint64(b[8:16], h.SensorID)
	engine.PutUint32(b[16:20], h.TrainCount)
	engine.PutUint32(b[20:24], h.ValidCount)
	engine.PutUint32(b[24:28], h.PayloadLength)
	engine.PutUint32(b[28:32], h.Checksum)

	return b
}

// ParseHeader parses and validates the header at the start of data.
//
// Parameters:
//   - data: Byte slice starting with a header (must be at least 32 bytes)
//
// Returns:
//   - Header: Parsed header
//   - error: ErrInvalidHeaderSize, ErrInvalidMagicNumber, ErrUnsupportedVersion,
//     ErrInvalidCompression, ErrUnknownDirection or ErrInvalidDegree
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}
	if [4]byte(data[0:4]) != Magic {
		return Header{}, fmt.Errorf("%w: % x", errs.ErrInvalidMagicNumber, data[0:4])
	}

	h := Header{
		Version:   data[4],
		Flags:     data[5],
		Degree:    data[6],
		Direction: calibration.Direction(data[7]),
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}
	if h.Flags&ReservedMask != 0 || !h.Compression().Valid() {
		return Header{}, fmt.Errorf("%w: flags 0x%02x", errs.ErrInvalidCompression, h.Flags)
	}
	if !h.Direction.Valid() {
		return Header{}, fmt.Errorf("%w: %d", errs.ErrUnknownDirection, data[7])
	}
	if h.Degree < 1 {
		return Header{}, fmt.Errorf("%w: %d", errs.ErrInvalidDegree, h.Degree)
	}

	engine := h.Engine()
	h.SensorID = engine.Uint64(data[8:16])
	h.TrainCount = engine.Uint32(data[16:20])
	h.ValidCount = engine.Uint32(data[20:24])
	h.PayloadLength = engine.Uint32(data[24:28])
	h.Checksum = engine.Uint32(data[28:32])

	return h, nil
}
