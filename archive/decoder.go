package archive

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"time"

	"github.com/arloliu/calfit/compress"
	"github.com/arloliu/calfit/endian"
	"github.com/arloliu/calfit/errs"
	"github.com/arloliu/calfit/internal/hash"
	"github.com/arloliu/calfit/regression"
)

// Decode parses a record produced by Encode.
//
// The whole input must be consumed: trailing bytes after the payload, a payload
// length that disagrees with the input or a payload with bytes left over are
// reported as errs.ErrInvalidPayload.
func Decode(data []byte) (*Record, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	stored := data[HeaderSize:]
	if uint64(len(stored)) != uint64(h.PayloadLength) {
		return nil, fmt.Errorf("%w: header declares %d payload bytes, have %d",
			errs.ErrInvalidPayload, h.PayloadLength, len(stored))
	}
	if sum := crc32.ChecksumIEEE(stored); sum != h.Checksum {
		return nil, fmt.Errorf("%w: stored 0x%08x, computed 0x%08x", errs.ErrChecksumMismatch, h.Checksum, sum)
	}

	codec, err := compress.GetCodec(h.Compression())
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(stored)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	rec, err := decodePayload(h, payload)
	if err != nil {
		return nil, err
	}
	if id := hash.ID(rec.Sensor); id != h.SensorID {
		return nil, fmt.Errorf("%w: header 0x%016x, name %q hashes to 0x%016x",
			errs.ErrHashMismatch, h.SensorID, rec.Sensor, id)
	}

	return rec, nil
}

func decodePayload(h Header, payload []byte) (*Record, error) {
	engine := h.Engine()

	nameLen, n := binary.Uvarint(payload)
	if n <= 0 || nameLen > uint64(len(payload)-n) {
		return nil, fmt.Errorf("%w: bad sensor name length", errs.ErrInvalidPayload)
	}
	payload = payload[n:]
	rec := &Record{
		Sensor:    string(payload[:nameLen]),
		Direction: h.Direction,
	}
	payload = payload[nameLen:]

	if len(payload) < 8 {
		return nil, fmt.Errorf("%w: missing creation time", errs.ErrInvalidPayload)
	}
	rec.CreatedAt = time.UnixMicro(int64(engine.Uint64(payload))).UTC()
	payload = payload[8:]

	coeffs, payload, err := endian.ReadFloat64s(engine, payload, int(h.Degree)+1)
	if err != nil {
		return nil, fmt.Errorf("coefficients: %w", err)
	}
	rec.Coefficients = coeffs

	if rec.Training, payload, err = readDataset(engine, payload, h.TrainCount); err != nil {
		return nil, fmt.Errorf("training set: %w", err)
	}
	if rec.Validation, payload, err = readDataset(engine, payload, h.ValidCount); err != nil {
		return nil, fmt.Errorf("validation set: %w", err)
	}
	if len(payload) != 0 {
		return nil, fmt.Errorf("%w: %d trailing payload bytes", errs.ErrInvalidPayload, len(payload))
	}

	return rec, nil
}

func readDataset(engine endian.EndianEngine, data []byte, count uint32) (regression.Dataset, []byte, error) {
	if count == 0 {
		return nil, data, nil
	}
	if uint64(len(data)) < 16*uint64(count) {
		return nil, nil, fmt.Errorf("%w: need %d samples, have %d bytes", errs.ErrInvalidPayload, count, len(data))
	}

	xs, rest, err := endian.ReadFloat64s(engine, data, int(count))
	if err != nil {
		return nil, nil, err
	}
	ys, rest, err := endian.ReadFloat64s(engine, rest, int(count))
	if err != nil {
		return nil, nil, err
	}

	ds, err := regression.NewDataset(xs, ys)
	if err != nil {
		return nil, nil, err
	}

	return ds, rest, nil
}
