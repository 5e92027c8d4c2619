package amqp

import (
	"fmt"
	"time"

	"github.com/amqp10x/goamqp/internal/buffer"
)

// EncodeFloat appends v as an AMQP float (IEEE-754 binary32, big-endian).
// There is only one wire form; useSmallest is accepted for signature
// uniformity and has no effect.
func EncodeFloat(buf []byte, v float32, withConstructor, useSmallest bool) []byte {
	if withConstructor {
		buf = append(buf, byte(typeCodeFloat))
	}
	return buffer.AppendFloat32(buf, v)
}

// EncodeDouble appends v as an AMQP double (IEEE-754 binary64, big-endian).
func EncodeDouble(buf []byte, v float64, withConstructor, useSmallest bool) []byte {
	if withConstructor {
		buf = append(buf, byte(typeCodeDouble))
	}
	return buffer.AppendFloat64(buf, v)
}

// EncodeTimestamp appends v as an AMQP timestamp: a signed 64-bit count of
// milliseconds since the Unix epoch. v may be an int64 millisecond value
// or a time.Time, converted via floor((t-epoch)/1ms).
func EncodeTimestamp(buf []byte, v interface{}, withConstructor bool) ([]byte, error) {
	var ms int64
	switch t := v.(type) {
	case int64:
		ms = t
	case int:
		ms = int64(t)
	case time.Time:
		ms = t.UnixMilli()
	default:
		return nil, newTypeError(fmt.Sprintf("cannot encode %T as a timestamp", v))
	}
	if withConstructor {
		buf = append(buf, byte(typeCodeTimestamp))
	}
	return buffer.AppendUint64(buf, uint64(ms)), nil
}

// EncodeUUID appends v as the 16-octet big-endian AMQP uuid form. v may be
// 16 raw bytes ([]byte or [16]byte/UUID), or a canonical dashed-hex string.
func EncodeUUID(buf []byte, v interface{}, withConstructor bool) ([]byte, error) {
	var raw [16]byte
	switch t := v.(type) {
	case UUID:
		raw = t
	case [16]byte:
		raw = t
	case []byte:
		if len(t) != 16 {
			return nil, newRangeError("uuid", v, "uuid must be 16 octets")
		}
		copy(raw[:], t)
	case string:
		id, err := ParseUUID(t)
		if err != nil {
			return nil, err
		}
		raw = id
	default:
		return nil, newTypeError(fmt.Sprintf("cannot encode %T as a uuid", v))
	}
	if withConstructor {
		buf = append(buf, byte(typeCodeUUID))
	}
	return append(buf, raw[:]...), nil
}
