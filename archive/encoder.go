package archive

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"
	"strings"

	"github.com/arloliu/calfit/compress"
	"github.com/arloliu/calfit/endian"
	"github.com/arloliu/calfit/errs"
	"github.com/arloliu/calfit/format"
	"github.com/arloliu/calfit/internal/options"
	"github.com/arloliu/calfit/internal/pool"
)

// EncoderConfig holds the encoding settings.
type EncoderConfig struct {
	Compression format.CompressionType
	BigEndian   bool
}

// EncoderOption configures Encode.
type EncoderOption = options.Option[*EncoderConfig]

// WithCompression selects the payload codec.
func WithCompression(c format.CompressionType) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		if !c.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, uint8(c))
		}
		cfg.Compression = c

		return nil
	})
}

// WithBigEndian writes multi-byte fields most significant byte first.
func WithBigEndian() EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.BigEndian = true
	})
}

// WithLittleEndian writes multi-byte fields least significant byte first. This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.BigEndian = false
	})
}

// Encode serializes rec.
//
// Parameters:
//   - rec: Record to encode; it is not modified
//   - opts: Compression and byte order options
//
// Returns:
//   - []byte: Header followed by the stored payload
//   - error: ErrInvalidSensorName, ErrUnknownDirection, ErrInvalidDegree,
//     ErrTooManyCoefficients, ErrInvalidCompression or a codec error
func Encode(rec *Record, opts ...EncoderOption) ([]byte, error) {
	cfg, err := options.Build(EncoderConfig{Compression: format.CompressionNone}, opts...)
	if err != nil {
		return nil, err
	}
	if err := validateRecord(rec); err != nil {
		return nil, err
	}

	h := Header{
		Version:    Version,
		Degree:     uint8(rec.Degree()),
		Direction:  rec.Direction,
		SensorID:   rec.SensorID(),
		TrainCount: uint32(len(rec.Training)),
		ValidCount: uint32(len(rec.Validation)),
	}
	h.setFlags(cfg.BigEndian, cfg.Compression)
	engine := h.Engine()

	codec, err := compress.GetCodec(cfg.Compression)
	if err != nil {
		return nil, err
	}
	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	encodePayload(engine, buf, rec)
	stored, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}
	if uint64(len(stored)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payload of %d bytes", errs.ErrInvalidPayload, len(stored))
	}

	h.PayloadLength = uint32(len(stored))
	h.Checksum = crc32.ChecksumIEEE(stored)

	// stored may alias the pooled buffer, so it is copied out before release.
	out := make([]byte, 0, HeaderSize+len(stored))
	out = append(out, h.Bytes()...)
	out = append(out, stored...)

	return out, nil
}

func validateRecord(rec *Record) error {
	if rec == nil || strings.TrimSpace(rec.Sensor) == "" {
		return fmt.Errorf("%w: empty sensor name", errs.ErrInvalidSensorName)
	}
	if !rec.Direction.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrUnknownDirection, uint8(rec.Direction))
	}
	if rec.Degree() < 1 {
		return fmt.Errorf("%w: %d coefficients", errs.ErrInvalidDegree, len(rec.Coefficients))
	}
	if rec.Degree() > MaxDegree {
		return fmt.Errorf("%w: degree %d exceeds %d", errs.ErrTooManyCoefficients, rec.Degree(), MaxDegree)
	}
	if uint64(len(rec.Training)) > math.MaxUint32 || uint64(len(rec.Validation)) > math.MaxUint32 {
		return fmt.Errorf("%w: too many samples", errs.ErrInvalidPayload)
	}

	return nil
}

func encodePayload(engine endian.EndianEngine, buf *pool.ByteBuffer, rec *Record) {
	buf.Grow(binary.MaxVarintLen64 + len(rec.Sensor) + 8 +
		8*(len(rec.Coefficients)+2*len(rec.Training)+2*len(rec.Validation)))

	b := binary.AppendUvarint(buf.B, uint64(len(rec.Sensor)))
	b = append(b, rec.Sensor...)
	b = engine.AppendUint64(b, uint64(rec.CreatedAt.UnixMicro()))
	b = endian.AppendFloat64s(engine, b, rec.Coefficients)
	b = endian.AppendFloat64s(engine, b, rec.Training.Xs())
	b = endian.AppendFloat64s(engine, b, rec.Training.Ys())
	b = endian.AppendFloat64s(engine, b, rec.Validation.Xs())
	b = endian.AppendFloat64s(engine, b, rec.Validation.Ys())
	buf.B = b
}
