package amqp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeBinary(t *testing.T) {
	out, err := EncodeBinary(nil, []byte{}, true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0xA0, 0x00}, out)

	out, err = EncodeBinary(nil, []byte("Test"), true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0xA0, 0x04, 'T', 'e', 's', 't'}, out)

	out, err = EncodeBinary(nil, bytes.Repeat([]byte{0}, 255), true, false)
	require.NoError(t, err)
	require.Equal(t, append([]byte{0xB0, 0x00, 0x00, 0x00, 0xFF}, bytes.Repeat([]byte{0}, 255)...), out)

	out, err = EncodeBinary(nil, bytes.Repeat([]byte{0}, 256), true, true)
	require.NoError(t, err)
	require.Equal(t, append([]byte{0xB0, 0x00, 0x00, 0x01, 0x00}, bytes.Repeat([]byte{0}, 256)...), out)

	out, err = EncodeBinary(nil, bytes.Repeat([]byte{0}, 255), false, true)
	require.NoError(t, err)
	require.Equal(t, append([]byte{0xFF}, bytes.Repeat([]byte{0}, 255)...), out)
}

func TestVariableWidthHeaderLengthOverflow(t *testing.T) {
	_, err := variableWidthHeader(nil, 1<<32, true, false, typeCodeVbin8, typeCodeVbin32)
	require.Error(t, err)
	require.IsType(t, &RangeError{}, err)

	_, err = variableWidthHeader(nil, (1<<32)-1, true, false, typeCodeVbin8, typeCodeVbin32)
	require.NoError(t, err)
}

func TestEncodeString(t *testing.T) {
	out, err := EncodeString(nil, "", true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0xA1, 0x00}, out)

	out, err = EncodeString(nil, "Test", true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0xA1, 0x04, 'T', 'e', 's', 't'}, out)

	_, err = EncodeString(nil, []byte{0xFF, 0xFE}, true, true)
	require.Error(t, err)
}

func TestEncodeSymbol(t *testing.T) {
	out, err := EncodeSymbol(nil, "Test", true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0xA3, 0x04, 'T', 'e', 's', 't'}, out)

	out, err = EncodeSymbol(nil, Symbol(""), true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0xA3, 0x00}, out)
}
