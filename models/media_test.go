package models

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeMediaData_ShortPayloadSingleLine(t *testing.T) {
	enc := EncodeMediaData([]byte("hello"))
	require.NotContains(t, enc, "\n")
	require.Equal(t, "aGVsbG8=", enc)
}

func TestEncodeMediaData_WrapsAt76Columns(t *testing.T) {
	data := bytes.Repeat([]byte{0xAB}, 300)

	enc := EncodeMediaData(data)
	lines := strings.Split(enc, "\n")
	require.Greater(t, len(lines), 1)
	for i, line := range lines {
		if i < len(lines)-1 {
			require.Len(t, line, 76)
		} else {
			require.LessOrEqual(t, len(line), 76)
			require.NotEmpty(t, line)
		}
	}
}

func TestDecodeMediaData_RoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("journal"), 50)

	decoded, err := DecodeMediaData(EncodeMediaData(data))
	require.NoError(t, err)
	require.Equal(t, data, decoded)
}

func TestDecodeMediaData_RejectsGarbage(t *testing.T) {
	_, err := DecodeMediaData("not base64 at all!!!")
	require.Error(t, err)
}
