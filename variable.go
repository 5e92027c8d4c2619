package amqp

import (
	"fmt"
	"unicode/utf8"

	"github.com/amqp10x/goamqp/internal/buffer"
)

const maxVariableWidthLength = 1 << 32

// toByteSlice accepts the handful of Go shapes the variable-width string-
// like encoders allow: a real string/Symbol, or an already-encoded []byte
// passed through verbatim (the reference encoder accepts byte-valued text
// input without re-encoding it).
func toByteSlice(v interface{}) ([]byte, error) {
	switch t := v.(type) {
	case string:
		return []byte(t), nil
	case Symbol:
		return []byte(t), nil
	case []byte:
		return t, nil
	default:
		return nil, newTypeError(fmt.Sprintf("cannot encode %T as text/binary", v))
	}
}

// variableWidthHeader appends the short (1-byte length) or long (4-byte
// length) constructor and length prefix for a payload of l bytes, per the
// smallest-encoding rule shared by binary/string/symbol.
func variableWidthHeader(buf []byte, l int, withConstructor, useSmallest bool, shortCode, longCode amqpType) ([]byte, error) {
	if uint64(l) >= maxVariableWidthLength {
		return nil, newRangeError("variable-width length", l, "encoded length")
	}
	if useSmallest && l <= 255 {
		if withConstructor {
			buf = append(buf, byte(shortCode))
		}
		return append(buf, byte(l)), nil
	}
	if withConstructor {
		buf = append(buf, byte(longCode))
	}
	return buffer.AppendUint32(buf, uint32(l)), nil
}

// EncodeBinary appends v as an AMQP binary value: a length-prefixed octet
// sequence, short form (vbin8) when useSmallest and len(v) <= 255, else
// long form (vbin32).
func EncodeBinary(buf []byte, v []byte, withConstructor, useSmallest bool) ([]byte, error) {
	buf, err := variableWidthHeader(buf, len(v), withConstructor, useSmallest, typeCodeVbin8, typeCodeVbin32)
	if err != nil {
		return nil, err
	}
	return append(buf, v...), nil
}

// EncodeString appends v as an AMQP string value. v may be a string or an
// already-UTF-8-encoded []byte.
func EncodeString(buf []byte, v interface{}, withConstructor, useSmallest bool) ([]byte, error) {
	raw, err := toByteSlice(v)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(raw) {
		return nil, newRangeError("string", v, "not valid UTF-8")
	}
	buf, err = variableWidthHeader(buf, len(raw), withConstructor, useSmallest, typeCodeStr8, typeCodeStr32)
	if err != nil {
		return nil, err
	}
	return append(buf, raw...), nil
}

// EncodeSymbol appends v as an AMQP symbol value (ASCII-range text). v may
// be a string, Symbol, or an already-encoded []byte.
func EncodeSymbol(buf []byte, v interface{}, withConstructor, useSmallest bool) ([]byte, error) {
	raw, err := toByteSlice(v)
	if err != nil {
		return nil, err
	}
	buf, err = variableWidthHeader(buf, len(raw), withConstructor, useSmallest, typeCodeSym8, typeCodeSym32)
	if err != nil {
		return nil, err
	}
	return append(buf, raw...), nil
}
