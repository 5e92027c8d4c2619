package amqp

import (
	"strings"

	"github.com/google/uuid"
)

// amqpType is a wire format code, the one-byte AMQP constructor that
// precedes a value's payload.
type amqpType uint8

// Type codes, per OASIS AMQP 1.0 Part 1 (Types).
const (
	typeCodeNull amqpType = 0x40

	typeCodeBool      amqpType = 0x56
	typeCodeBoolTrue  amqpType = 0x41
	typeCodeBoolFalse amqpType = 0x42

	typeCodeUbyte      amqpType = 0x50
	typeCodeUshort     amqpType = 0x60
	typeCodeUint       amqpType = 0x70
	typeCodeSmallUint  amqpType = 0x52
	typeCodeUint0      amqpType = 0x43
	typeCodeUlong      amqpType = 0x80
	typeCodeSmallUlong amqpType = 0x53
	typeCodeUlong0     amqpType = 0x44

	typeCodeByte      amqpType = 0x51
	typeCodeShort     amqpType = 0x61
	typeCodeInt       amqpType = 0x71
	typeCodeSmallint  amqpType = 0x54
	typeCodeLong      amqpType = 0x81
	typeCodeSmalllong amqpType = 0x55

	typeCodeFloat  amqpType = 0x72
	typeCodeDouble amqpType = 0x82

	typeCodeTimestamp amqpType = 0x83
	typeCodeUUID      amqpType = 0x98

	typeCodeVbin8  amqpType = 0xA0
	typeCodeVbin32 amqpType = 0xB0
	typeCodeStr8   amqpType = 0xA1
	typeCodeStr32  amqpType = 0xB1
	typeCodeSym8   amqpType = 0xA3
	typeCodeSym32  amqpType = 0xB3

	typeCodeList0   amqpType = 0x45
	typeCodeList8   amqpType = 0xC0
	typeCodeList32  amqpType = 0xD0
	typeCodeMap8    amqpType = 0xC1
	typeCodeMap32   amqpType = 0xD1
	typeCodeArray8  amqpType = 0xE0
	typeCodeArray32 amqpType = 0xF0

	// Section descriptor codes, used in small-ulong form (0x53 <code>) as
	// the described-type descriptor of a Message's framed body sections.
	descriptorHeader       amqpType = 0x70
	descriptorProperties   amqpType = 0x73
	descriptorData         amqpType = 0x75
	descriptorAMQPSequence amqpType = 0x76
	descriptorAMQPValue    amqpType = 0x77
)

// Kind names the AMQP simple type a Tagged descriptor's VALUE should be
// encoded as. Matching is case-insensitive, per spec.
type Kind string

// The closed set of kind names accepted by a Tagged descriptor's Type field.
const (
	KindNull      Kind = "NULL"
	KindBool      Kind = "BOOL"
	KindUbyte     Kind = "UBYTE"
	KindUshort    Kind = "USHORT"
	KindUint      Kind = "UINT"
	KindUlong     Kind = "ULONG"
	KindByte      Kind = "BYTE"
	KindShort     Kind = "SHORT"
	KindInt       Kind = "INT"
	KindLong      Kind = "LONG"
	KindFloat     Kind = "FLOAT"
	KindDouble    Kind = "DOUBLE"
	KindTimestamp Kind = "TIMESTAMP"
	KindUUID      Kind = "UUID"
	KindBinary    Kind = "BINARY"
	KindString    Kind = "STRING"
	KindSymbol    Kind = "SYMBOL"
	KindList      Kind = "LIST"
	KindMap       Kind = "MAP"
	KindArray     Kind = "ARRAY"
)

// normalizeKind upper-cases a caller-supplied kind tag so lookups are
// case-insensitive across the closed set above.
func normalizeKind(k Kind) Kind {
	return Kind(strings.ToUpper(string(k)))
}

// Tagged is the explicit {TYPE, VALUE} descriptor: a closed tagged variant
// over the AMQP simple-type kinds, dispatched by EncodeValue instead of
// inferring the wire type from the Go runtime type of Value.
type Tagged struct {
	Type  Kind
	Value interface{}
}

// Symbol is an AMQP symbolic (ASCII-range) string.
type Symbol string

// UUID is the 16-octet big-endian form of an AMQP uuid value.
type UUID [16]byte

// ParseUUID parses a canonical dashed-hex UUID string into its 16-octet
// wire form, using google/uuid's RFC 4122 parser rather than hand-rolled
// hex decoding.
func ParseUUID(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, newRangeError("uuid", s, err.Error())
	}
	var out UUID
	copy(out[:], id[:])
	return out, nil
}
