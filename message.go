package amqp

import "time"

// Header carries a Message's delivery-affecting fields. Unset fields are
// nil and encode as null; see EncodeHeader for the fixed 5-field layout.
type Header struct {
	Durable       *bool
	Priority      *uint8
	TTL           *uint32
	FirstAcquirer *bool
	DeliveryCount *uint32
}

// Properties carries a Message's application-visible metadata, in the
// fixed 13-field order EncodeProperties emits. MessageID and
// CorrelationID are AMQP's "*" wildcard type — any of ulong, uuid,
// binary, or string — so they're left as interface{} rather than forced
// to one Go type; wrap in a Tagged to pick the wire kind explicitly.
type Properties struct {
	MessageID          interface{}
	UserID             []byte
	To                 *string
	Subject            *string
	ReplyTo            *string
	CorrelationID      interface{}
	ContentType        *string
	ContentEncoding    *string
	AbsoluteExpiryTime *time.Time
	CreationTime       *time.Time
	GroupID            *string
	GroupSequence      *uint32
	ReplyToGroupID     *string
}

// Message is an ordered record with optional Header and Properties
// sections and exactly one body form: Data, Value, or Sequence.
type Message struct {
	Header     *Header
	Properties *Properties
	Data       [][]byte
	Value      interface{}
	Sequence   []interface{}
}
