// Package endian provides the byte order engines used by the archive format.
//
// An EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so one
// value can both append and read fixed-width fields:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = endian.AppendFloat64s(engine, buf, coeffs)
//	values, rest, err := endian.ReadFloat64s(engine, buf, len(coeffs))
//
// All functions are safe for concurrent use. The engines are immutable.
package endian

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/calfit/errs"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// AppendFloat64s appends the IEEE 754 bits of every value to buf.
func AppendFloat64s(engine EndianEngine, buf []byte, values []float64) []byte {
	buf = growBy(buf, 8*len(values))
	for _, v := range values {
		buf = engine.AppendUint64(buf, math.Float64bits(v))
	}

	return buf
}

// ReadFloat64s decodes n float64 values from the front of data and returns the
// remaining bytes. It fails with errs.ErrInvalidPayload if data is too short.
func ReadFloat64s(engine EndianEngine, data []byte, n int) ([]float64, []byte, error) {
	if n < 0 || len(data)/8 < n {
		return nil, nil, fmt.Errorf("%w: need %d float64 values, have %d bytes", errs.ErrInvalidPayload, n, len(data))
	}

	values := make([]float64, n)
	for i := range values {
		values[i] = math.Float64frombits(engine.Uint64(data[8*i:]))
	}

	return values, data[8*n:], nil
}

func growBy(buf []byte, n int) []byte {
	if cap(buf)-len(buf) >= n {
		return buf
	}
	grown := make([]byte, len(buf), len(buf)+n)
	copy(grown, buf)

	return grown
}
