package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/calfit/errs"
)

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
	require.Equal(t, "Unknown", CompressionType(0xF).String())
}

func TestParseCompressionType(t *testing.T) {
	tests := []struct {
		in   string
		want CompressionType
	}{
		{"", CompressionNone},
		{"none", CompressionNone},
		{"ZSTD", CompressionZstd},
		{" s2 ", CompressionS2},
		{"Lz4", CompressionLZ4},
	}

	for _, tt := range tests {
		got, err := ParseCompressionType(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseCompressionType("gzip")
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestCompressionType_Text(t *testing.T) {
	for _, c := range CompressionTypes {
		require.True(t, c.Valid())

		text, err := c.MarshalText()
		require.NoError(t, err)

		var got CompressionType
		require.NoError(t, got.UnmarshalText(text))
		require.Equal(t, c, got)
	}

	_, err := CompressionType(9).MarshalText()
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}
