package amqp

import (
	"fmt"

	"github.com/amqp10x/goamqp/internal/buffer"
)

// Pair is an ordered (key, value) map entry. AMQP map encoding preserves
// insertion order and tolerates duplicate keys — properties a Go map
// can't represent — so Pair slices are the primary map input. EncodeValue
// also accepts a map[string]interface{} as a convenience; its entries are
// emitted in Go map iteration order, so their order is not preserved.
type Pair struct {
	Key   interface{}
	Value interface{}
}

// EncodeList appends values as an AMQP list: list0 (empty, only when
// useSmallest), list8 (short, size+count fit a byte and useSmallest is
// true), or list32 (long) otherwise — an empty list with useSmallest=false
// still takes the long form, size=4, count=0, since list0 is an inherently
// short encoding. Elements are encoded with their own constructors via
// EncodeValue, into a temporary slice, then the header is written followed
// by that slice — never by seeking back into buf.
func EncodeList(buf []byte, values []interface{}, withConstructor, useSmallest bool) ([]byte, error) {
	n := len(values)
	if n == 0 && useSmallest {
		if withConstructor {
			return append(buf, byte(typeCodeList0)), nil
		}
		return buf, nil
	}

	var elems []byte
	for i, v := range values {
		var err error
		elems, err = EncodeValue(elems, v, true, useSmallest)
		if err != nil {
			return nil, wrapIndex(err, "list element %d", i)
		}
	}

	s := len(elems)
	if useSmallest && s+1 <= 255 && n <= 255 {
		if withConstructor {
			buf = append(buf, byte(typeCodeList8))
		}
		buf = append(buf, byte(s+1), byte(n))
		return append(buf, elems...), nil
	}
	if withConstructor {
		buf = append(buf, byte(typeCodeList32))
	}
	buf = buffer.AppendUint32(buf, uint32(s+4))
	buf = buffer.AppendUint32(buf, uint32(n))
	return append(buf, elems...), nil
}

// EncodeMap appends pairs as an AMQP map: map8 (short) when the encoded
// size and entry count fit a byte and useSmallest is true, else map32.
// Key uniqueness is the caller's responsibility — order and duplicates
// are both preserved exactly.
func EncodeMap(buf []byte, pairs []Pair, withConstructor, useSmallest bool) ([]byte, error) {
	var body []byte
	for i, p := range pairs {
		var err error
		body, err = EncodeValue(body, p.Key, true, useSmallest)
		if err != nil {
			return nil, wrapIndex(err, "map key %d", i)
		}
		body, err = EncodeValue(body, p.Value, true, useSmallest)
		if err != nil {
			return nil, wrapIndex(err, "map value %d", i)
		}
	}

	n := 2 * len(pairs)
	s := len(body)
	if useSmallest && s+1 <= 255 && n <= 255 {
		if withConstructor {
			buf = append(buf, byte(typeCodeMap8))
		}
		buf = append(buf, byte(s+1), byte(n))
		return append(buf, body...), nil
	}
	if withConstructor {
		buf = append(buf, byte(typeCodeMap32))
	}
	buf = buffer.AppendUint32(buf, uint32(s+4))
	buf = buffer.AppendUint32(buf, uint32(n))
	return append(buf, body...), nil
}

// EncodeEmptyArray appends the zero-element array form. An empty array
// carries no element-type constructor on the wire (the observed fixture
// is the 3-byte `array8, size=1, count=0` form) — elementKind is accepted
// so typed callers can document their intent, but it does not currently
// change the emitted bytes; see SPEC_FULL.md §4's "empty array" open
// question.
func EncodeEmptyArray(buf []byte, elementKind Kind, withConstructor bool) []byte {
	_ = elementKind
	if withConstructor {
		buf = append(buf, byte(typeCodeArray8))
	}
	return append(buf, 1, 0)
}

// EncodeArray appends values as an AMQP array: every element must encode
// to the same constructor byte, or a TypeError is returned. Unlike
// EncodeList, array elements are always encoded with useSmallest=false —
// a single array can only carry one wire width per type, so individual
// elements can't independently pick a "smallest" form; only the array's
// own short-vs-long header selection is controlled by useSmallest.
func EncodeArray(buf []byte, values []interface{}, withConstructor, useSmallest bool) ([]byte, error) {
	n := len(values)
	if n == 0 {
		return EncodeEmptyArray(buf, KindNull, withConstructor), nil
	}

	var c amqpType
	var payload []byte
	for i, v := range values {
		encoded, err := EncodeValue(nil, v, true, false)
		if err != nil {
			return nil, wrapIndex(err, "array element %d", i)
		}
		if len(encoded) == 0 {
			return nil, newTypeError("array element encoded to zero bytes")
		}
		elemType := amqpType(encoded[0])
		if i == 0 {
			c = elemType
		} else if elemType != c {
			return nil, newTypeError(fmt.Sprintf("array elements have mismatched types: %#x vs %#x", c, elemType))
		}
		payload = append(payload, encoded[1:]...)
	}

	p := len(payload)
	// The short-form size field counts the count byte only when there is
	// non-empty per-element payload — see DESIGN.md ("Array's short-form
	// size quirk") for why an all-null array's size field is 1 regardless
	// of element count.
	shortSize := p + 1
	if p > 0 {
		shortSize++
	}

	if useSmallest && shortSize <= 255 && n <= 255 {
		if withConstructor {
			buf = append(buf, byte(typeCodeArray8))
		}
		buf = append(buf, byte(shortSize), byte(n), byte(c))
		return append(buf, payload...), nil
	}

	if withConstructor {
		buf = append(buf, byte(typeCodeArray32))
	}
	buf = buffer.AppendUint32(buf, uint32(p+1+4))
	buf = buffer.AppendUint32(buf, uint32(n))
	buf = append(buf, byte(c))
	return append(buf, payload...), nil
}
