// Package buffer provides the append-only byte buffer primitives the AMQP
// encoder is built on: big-endian fixed-width integer and raw byte
// appenders. Every function takes the destination slice and returns the
// extended slice, mirroring how encoding/binary.BigEndian.PutUint32 et al.
// are used against a pre-sized slice, but growing on demand instead.
package buffer

import "math"

// AppendByte appends a single byte to buf.
func AppendByte(buf []byte, b byte) []byte {
	return append(buf, b)
}

// AppendUint16 appends v as 2 big-endian bytes.
func AppendUint16(buf []byte, v uint16) []byte {
	return append(buf, byte(v>>8), byte(v))
}

// AppendUint32 appends v as 4 big-endian bytes.
func AppendUint32(buf []byte, v uint32) []byte {
	return append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// AppendUint64 appends v as 8 big-endian bytes.
func AppendUint64(buf []byte, v uint64) []byte {
	return append(buf,
		byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v),
	)
}

// AppendFloat32 appends the IEEE-754 binary32 big-endian representation of f.
func AppendFloat32(buf []byte, f float32) []byte {
	return AppendUint32(buf, math.Float32bits(f))
}

// AppendFloat64 appends the IEEE-754 binary64 big-endian representation of f.
func AppendFloat64(buf []byte, f float64) []byte {
	return AppendUint64(buf, math.Float64bits(f))
}
