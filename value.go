package amqp

import (
	"fmt"
	"time"
)

// EncodeValue is the tagged dispatcher: given a Tagged{Type, Value} it
// encodes Value as the named kind; given a bare Go value it infers the
// AMQP kind from the Go runtime type. withConstructor and useSmallest are
// forwarded unchanged to whichever primitive or compound encoder handles
// the value.
func EncodeValue(buf []byte, value interface{}, withConstructor, useSmallest bool) ([]byte, error) {
	if tagged, ok := value.(Tagged); ok {
		return encodeTagged(buf, tagged, withConstructor, useSmallest)
	}
	return encodeNative(buf, value, withConstructor, useSmallest)
}

func encodeTagged(buf []byte, t Tagged, withConstructor, useSmallest bool) ([]byte, error) {
	switch normalizeKind(t.Type) {
	case KindNull:
		return EncodeNull(buf, withConstructor), nil
	case KindBool:
		return EncodeBool(buf, Truthy(t.Value), withConstructor), nil
	case KindUbyte:
		return EncodeUbyte(buf, t.Value, withConstructor, useSmallest)
	case KindUshort:
		return EncodeUshort(buf, t.Value, withConstructor, useSmallest)
	case KindUint:
		return EncodeUint(buf, t.Value, withConstructor, useSmallest)
	case KindUlong:
		return EncodeUlong(buf, t.Value, withConstructor, useSmallest)
	case KindByte:
		n, err := asInt64(t.Value)
		if err != nil {
			return nil, err
		}
		return EncodeByte(buf, n, withConstructor, useSmallest)
	case KindShort:
		n, err := asInt64(t.Value)
		if err != nil {
			return nil, err
		}
		return EncodeShort(buf, n, withConstructor, useSmallest)
	case KindInt:
		n, err := asInt64(t.Value)
		if err != nil {
			return nil, err
		}
		return EncodeInt(buf, n, withConstructor, useSmallest)
	case KindLong:
		n, err := asInt64(t.Value)
		if err != nil {
			return nil, err
		}
		return EncodeLong(buf, n, withConstructor, useSmallest)
	case KindFloat:
		f, err := asFloat64(t.Value)
		if err != nil {
			return nil, err
		}
		return EncodeFloat(buf, float32(f), withConstructor, useSmallest), nil
	case KindDouble:
		f, err := asFloat64(t.Value)
		if err != nil {
			return nil, err
		}
		return EncodeDouble(buf, f, withConstructor, useSmallest), nil
	case KindTimestamp:
		return EncodeTimestamp(buf, t.Value, withConstructor)
	case KindUUID:
		return EncodeUUID(buf, t.Value, withConstructor)
	case KindBinary:
		raw, err := toByteSlice(t.Value)
		if err != nil {
			return nil, err
		}
		return EncodeBinary(buf, raw, withConstructor, useSmallest)
	case KindString:
		return EncodeString(buf, t.Value, withConstructor, useSmallest)
	case KindSymbol:
		return EncodeSymbol(buf, t.Value, withConstructor, useSmallest)
	case KindList:
		values, err := asSlice(t.Value)
		if err != nil {
			return nil, err
		}
		return EncodeList(buf, values, withConstructor, useSmallest)
	case KindMap:
		pairs, err := asPairs(t.Value)
		if err != nil {
			return nil, err
		}
		return EncodeMap(buf, pairs, withConstructor, useSmallest)
	case KindArray:
		values, err := asSlice(t.Value)
		if err != nil {
			return nil, err
		}
		return EncodeArray(buf, values, withConstructor, useSmallest)
	default:
		return nil, newRangeError("tagged type", t.Type, "type tag")
	}
}

func encodeNative(buf []byte, value interface{}, withConstructor, useSmallest bool) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return EncodeNull(buf, withConstructor), nil
	case bool:
		return EncodeBool(buf, v, withConstructor), nil
	case int:
		return EncodeInt(buf, int64(v), withConstructor, useSmallest)
	case int8:
		return EncodeInt(buf, int64(v), withConstructor, useSmallest)
	case int16:
		return EncodeInt(buf, int64(v), withConstructor, useSmallest)
	case int32:
		return EncodeInt(buf, int64(v), withConstructor, useSmallest)
	case int64:
		return EncodeInt(buf, v, withConstructor, useSmallest)
	case float32:
		return EncodeDouble(buf, float64(v), withConstructor, useSmallest), nil
	case float64:
		return EncodeDouble(buf, v, withConstructor, useSmallest), nil
	case []byte:
		return EncodeBinary(buf, v, withConstructor, useSmallest)
	case string:
		return EncodeString(buf, v, withConstructor, useSmallest)
	case Symbol:
		return EncodeSymbol(buf, v, withConstructor, useSmallest)
	case UUID:
		return EncodeUUID(buf, v, withConstructor)
	case [16]byte:
		return EncodeUUID(buf, v, withConstructor)
	case time.Time:
		return EncodeTimestamp(buf, v, withConstructor)
	case []interface{}:
		return EncodeList(buf, v, withConstructor, useSmallest)
	case []Pair:
		return EncodeMap(buf, v, withConstructor, useSmallest)
	case map[string]interface{}:
		pairs := make([]Pair, 0, len(v))
		for k, val := range v {
			pairs = append(pairs, Pair{Key: k, Value: val})
		}
		return EncodeMap(buf, pairs, withConstructor, useSmallest)
	default:
		return nil, newTypeError(fmt.Sprintf("cannot infer an AMQP type for %T", value))
	}
}

func asInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	default:
		return 0, newTypeError(fmt.Sprintf("cannot encode %T as a signed integer", v))
	}
}

func asFloat64(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, newTypeError(fmt.Sprintf("cannot encode %T as a floating-point value", v))
	}
}

func asSlice(v interface{}) ([]interface{}, error) {
	if s, ok := v.([]interface{}); ok {
		return s, nil
	}
	return nil, newTypeError(fmt.Sprintf("cannot encode %T as a list/array value", v))
}

func asPairs(v interface{}) ([]Pair, error) {
	switch m := v.(type) {
	case []Pair:
		return m, nil
	case map[string]interface{}:
		pairs := make([]Pair, 0, len(m))
		for k, val := range m {
			pairs = append(pairs, Pair{Key: k, Value: val})
		}
		return pairs, nil
	default:
		return nil, newTypeError(fmt.Sprintf("cannot encode %T as a map value", v))
	}
}
