package compress

// ZstdCodec provides Zstandard compression, the best ratio of the built-in codecs.
//
// The pure Go implementation from klauspost/compress is used by default. Builds
// with cgo and the gozstd tag switch to the libzstd binding from valyala/gozstd;
// both produce standard zstd frames and can read each other's output.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// zstdLevel is the compression level used by both implementations.
const zstdLevel = 3
