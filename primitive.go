package amqp

import (
	"fmt"
	"reflect"

	"github.com/amqp10x/goamqp/internal/buffer"
)

// EncodeNull appends the AMQP null constructor, or nothing when
// withConstructor is false (null has no payload).
func EncodeNull(buf []byte, withConstructor bool) []byte {
	if withConstructor {
		return append(buf, byte(typeCodeNull))
	}
	return buf
}

// EncodeBool appends v as an AMQP boolean. With a constructor the wire
// form is always the 2-byte 0x56 form; without one it's the single-byte
// true/false constructor (0x41/0x42) used as its own payload.
func EncodeBool(buf []byte, v bool, withConstructor bool) []byte {
	if withConstructor {
		buf = append(buf, byte(typeCodeBool))
		if v {
			return append(buf, 1)
		}
		return append(buf, 0)
	}
	if v {
		return append(buf, byte(typeCodeBoolTrue))
	}
	return append(buf, byte(typeCodeBoolFalse))
}

// Truthy coerces a native host value to a bool the way the reference
// encoder does at its dispatch boundary: nil and the zero value of
// strings/slices/maps/numbers are false, everything else is true. This is
// intentionally narrow — EncodeBool itself never coerces — it exists only
// for EncodeValue's Tagged BOOL path (see §9 "duck-typed booleanness").
func Truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case []byte:
		return len(t) != 0
	case Symbol:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case uint64:
		return t != 0
	case float64:
		return t != 0
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Slice, reflect.Map, reflect.String:
			return rv.Len() != 0
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return rv.Int() != 0
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return rv.Uint() != 0
		case reflect.Float32, reflect.Float64:
			return rv.Float() != 0
		}
		return true
	}
}

// toUint64Abs mirrors the reference encoder's dynamic-typing quirk for the
// unsigned family: a signed input encodes as its absolute value. See
// SPEC_FULL.md §4 on the "negative unsigned inputs" open question.
func toUint64Abs(v interface{}) (uint64, error) {
	switch n := v.(type) {
	case int:
		return absUint64(int64(n)), nil
	case int8:
		return absUint64(int64(n)), nil
	case int16:
		return absUint64(int64(n)), nil
	case int32:
		return absUint64(int64(n)), nil
	case int64:
		return absUint64(n), nil
	case uint:
		return uint64(n), nil
	case uint8:
		return uint64(n), nil
	case uint16:
		return uint64(n), nil
	case uint32:
		return uint64(n), nil
	case uint64:
		return n, nil
	default:
		return 0, newTypeError(fmt.Sprintf("cannot encode %T as an unsigned integer", v))
	}
}

func absUint64(n int64) uint64 {
	if n < 0 {
		return uint64(-n)
	}
	return uint64(n)
}

// EncodeUbyte appends v as an AMQP ubyte (0..255). ubyte has a single wire
// form (constructor + 1 byte); useSmallest has no effect and is accepted
// only for signature uniformity with the rest of the primitive family.
func EncodeUbyte(buf []byte, v interface{}, withConstructor, useSmallest bool) ([]byte, error) {
	av, err := toUint64Abs(v)
	if err != nil {
		return nil, err
	}
	if av > 255 {
		return nil, newRangeError("ubyte", v, "ubyte")
	}
	if withConstructor {
		buf = append(buf, byte(typeCodeUbyte))
	}
	return append(buf, byte(av)), nil
}

// EncodeUshort appends v as an AMQP ushort (0..65535). ushort has a single
// wire form (constructor + 2 bytes); useSmallest has no effect.
func EncodeUshort(buf []byte, v interface{}, withConstructor, useSmallest bool) ([]byte, error) {
	av, err := toUint64Abs(v)
	if err != nil {
		return nil, err
	}
	if av > 65535 {
		return nil, newRangeError("ushort", v, "ushort")
	}
	if withConstructor {
		buf = append(buf, byte(typeCodeUshort))
	}
	return buffer.AppendUint16(buf, uint16(av)), nil
}

// EncodeUint appends v as an AMQP uint (0..2^32-1), choosing the empty
// (value 0), small (1..255), or full (4-byte) wire form when useSmallest
// is true; useSmallest=false always emits the full 4-byte form.
func EncodeUint(buf []byte, v interface{}, withConstructor, useSmallest bool) ([]byte, error) {
	av, err := toUint64Abs(v)
	if err != nil {
		return nil, err
	}
	if av > 0xFFFFFFFF {
		return nil, newRangeError("uint", v, "uint")
	}
	if !useSmallest {
		if withConstructor {
			buf = append(buf, byte(typeCodeUint))
		}
		return buffer.AppendUint32(buf, uint32(av)), nil
	}
	if av == 0 {
		if withConstructor {
			return append(buf, byte(typeCodeUint0)), nil
		}
		return buf, nil
	}
	if av <= 255 {
		if withConstructor {
			buf = append(buf, byte(typeCodeSmallUint))
		}
		return append(buf, byte(av)), nil
	}
	if withConstructor {
		buf = append(buf, byte(typeCodeUint))
	}
	return buffer.AppendUint32(buf, uint32(av)), nil
}

// EncodeUlong appends v as an AMQP ulong (0..2^64-1), with the same
// empty/small/full selection rule as EncodeUint.
func EncodeUlong(buf []byte, v interface{}, withConstructor, useSmallest bool) ([]byte, error) {
	av, err := toUint64Abs(v)
	if err != nil {
		return nil, err
	}
	if !useSmallest {
		if withConstructor {
			buf = append(buf, byte(typeCodeUlong))
		}
		return buffer.AppendUint64(buf, av), nil
	}
	if av == 0 {
		if withConstructor {
			return append(buf, byte(typeCodeUlong0)), nil
		}
		return buf, nil
	}
	if av <= 255 {
		if withConstructor {
			buf = append(buf, byte(typeCodeSmallUlong))
		}
		return append(buf, byte(av)), nil
	}
	if withConstructor {
		buf = append(buf, byte(typeCodeUlong))
	}
	return buffer.AppendUint64(buf, av), nil
}

// EncodeByte appends v as an AMQP byte (-128..127). byte has a single wire
// form (constructor + 1 byte); useSmallest has no effect.
func EncodeByte(buf []byte, v int64, withConstructor, useSmallest bool) ([]byte, error) {
	if v < -128 || v > 127 {
		return nil, newRangeError("byte", v, "byte")
	}
	if withConstructor {
		buf = append(buf, byte(typeCodeByte))
	}
	return append(buf, byte(int8(v))), nil
}

// EncodeShort appends v as an AMQP short (-32768..32767). short has no
// small form; it is always the 2-byte full form.
func EncodeShort(buf []byte, v int64, withConstructor, useSmallest bool) ([]byte, error) {
	if v < -32768 || v > 32767 {
		return nil, newRangeError("short", v, "short")
	}
	if withConstructor {
		buf = append(buf, byte(typeCodeShort))
	}
	return buffer.AppendUint16(buf, uint16(int16(v))), nil
}

// EncodeInt appends v as an AMQP int (-2^31..2^31-1), choosing the small
// (1-byte, -128..127) or full (4-byte) wire form when useSmallest is true.
func EncodeInt(buf []byte, v int64, withConstructor, useSmallest bool) ([]byte, error) {
	if v < -2147483648 || v > 2147483647 {
		return nil, newRangeError("int", v, "int")
	}
	if useSmallest && v >= -128 && v <= 127 {
		if withConstructor {
			buf = append(buf, byte(typeCodeSmallint))
		}
		return append(buf, byte(int8(v))), nil
	}
	if withConstructor {
		buf = append(buf, byte(typeCodeInt))
	}
	return buffer.AppendUint32(buf, uint32(int32(v))), nil
}

// EncodeLong appends v as an AMQP long, choosing the small (1-byte,
// -128..127) or full (8-byte) wire form when useSmallest is true. Every
// Go int64 is a valid AMQP long, so this never returns an error.
func EncodeLong(buf []byte, v int64, withConstructor, useSmallest bool) ([]byte, error) {
	if useSmallest && v >= -128 && v <= 127 {
		if withConstructor {
			buf = append(buf, byte(typeCodeSmalllong))
		}
		return append(buf, byte(int8(v))), nil
	}
	if withConstructor {
		buf = append(buf, byte(typeCodeLong))
	}
	return buffer.AppendUint64(buf, uint64(v)), nil
}
