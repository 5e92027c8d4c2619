package amqp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeNull(t *testing.T) {
	out := EncodeNull(nil, true)
	require.Equal(t, []byte{0x40}, out)

	out, err := EncodeValue(nil, nil, true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x40}, out)
}

func TestEncodeBool(t *testing.T) {
	require.Equal(t, []byte{0x56, 0x01}, EncodeBool(nil, true, true))
	require.Equal(t, []byte{0x56, 0x00}, EncodeBool(nil, false, true))
	require.Equal(t, []byte{0x41}, EncodeBool(nil, true, false))
	require.Equal(t, []byte{0x42}, EncodeBool(nil, false, false))
}

func TestTruthy(t *testing.T) {
	require.True(t, Truthy("foo"))
	require.False(t, Truthy(""))
	require.False(t, Truthy(nil))
	require.True(t, Truthy(1))
	require.False(t, Truthy(0))
}

func TestEncodeUbyte(t *testing.T) {
	out, err := EncodeUbyte(nil, 255, true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x50, 0xFF}, out)

	out, err = EncodeUbyte(nil, -1, true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x50, 0x01}, out)

	out, err = EncodeUbyte(nil, 0, false, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, out)

	_, err = EncodeUbyte(nil, 256, true, true)
	require.Error(t, err)
}

func TestEncodeUshort(t *testing.T) {
	out, err := EncodeUshort(nil, 16963, true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x60, 0x42, 0x43}, out)

	out, err = EncodeUshort(nil, -255, true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x60, 0x00, 0xFF}, out)

	_, err = EncodeUshort(nil, 65536, true, true)
	require.Error(t, err)
}

func TestEncodeUint(t *testing.T) {
	out, err := EncodeUint(nil, 0, true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x43}, out)

	out, err = EncodeUint(nil, 66, true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x52, 0x42}, out)

	out, err = EncodeUint(nil, -66, true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x52, 0x42}, out)

	out, err = EncodeUint(nil, 255, true, false)
	require.NoError(t, err)
	require.Equal(t, []byte{0x70, 0x00, 0x00, 0x00, 0xFF}, out)

	out, err = EncodeUint(nil, uint64(4294967295), true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x70, 0xFF, 0xFF, 0xFF, 0xFF}, out)

	out, err = EncodeUint(nil, 429496700, false, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x19, 0x99, 0x99, 0x7C}, out)

	_, err = EncodeUint(nil, uint64(4294967296), true, true)
	require.Error(t, err)
}

func TestEncodeUlong(t *testing.T) {
	out, err := EncodeUlong(nil, 0, true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x44}, out)

	out, err = EncodeUlong(nil, uint64(18446744073709551615), true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x80, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, out)

	out, err = EncodeUlong(nil, -66, true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x53, 0x42}, out)
}

func TestEncodeByte(t *testing.T) {
	out, err := EncodeByte(nil, -1, true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x51, 0xFF}, out)

	out, err = EncodeByte(nil, -128, true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x51, 0x80}, out)

	_, err = EncodeByte(nil, 128, true, true)
	require.Error(t, err)

	_, err = EncodeByte(nil, -129, true, true)
	require.Error(t, err)
}

func TestEncodeShort(t *testing.T) {
	out, err := EncodeShort(nil, -255, true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x61, 0xFF, 0x01}, out)

	out, err = EncodeShort(nil, 255, false, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0xFF}, out)

	_, err = EncodeShort(nil, 32768, true, true)
	require.Error(t, err)
}

func TestEncodeInt(t *testing.T) {
	out, err := EncodeInt(nil, 66, true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x54, 0x42}, out)

	out, err = EncodeInt(nil, -66, true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x54, 0xBE}, out)

	out, err = EncodeInt(nil, 127, true, false)
	require.NoError(t, err)
	require.Equal(t, []byte{0x71, 0x00, 0x00, 0x00, 0x7F}, out)

	out, err = EncodeInt(nil, -1, false, false)
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, out)

	_, err = EncodeInt(nil, 2147483648, true, true)
	require.Error(t, err)
}

func TestEncodeLong(t *testing.T) {
	out, err := EncodeLong(nil, 9223372036854775807, true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x81, 0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, out)

	out, err = EncodeLong(nil, -9223372036854775808, true, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x81, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, out)
}
