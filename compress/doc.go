// Package compress provides the payload codecs used by calibration archives.
//
// Every codec implements Codec and is selected by a format.CompressionType:
//   - None: No compression (format.CompressionNone)
//   - Zstd: Best ratio, moderate speed (format.CompressionZstd)
//   - S2: Balanced ratio and speed (format.CompressionS2)
//   - LZ4: Fastest decompression (format.CompressionLZ4)
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//
//	compressed, err := codec.Compress(payload)
//	original, err := codec.Decompress(compressed)
//
// Archives of a handful of readings are usually smaller uncompressed; compression
// pays off once a record carries dense validation sweeps.
//
// # Zstd implementations
//
// By default Zstd uses the pure Go encoder and decoder from klauspost/compress,
// pooled with sync.Pool. Building with cgo and the gozstd tag switches to
// valyala/gozstd:
//
//	go build -tags gozstd ./...
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use. Internal pools
// are goroutine-safe.
package compress
