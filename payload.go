package amqp

// appendDescribedSection appends the described-type framing (0x00, the
// small-ulong descriptor, then body) used for every Message section.
func appendDescribedSection(buf []byte, descriptor amqpType, body []byte) []byte {
	buf = append(buf, 0x00, 0x53, byte(descriptor))
	return append(buf, body...)
}

// EncodeHeader appends a Message's Header as a described Header section.
// The body is always the full 5-field list — unset fields encode as
// null, the list is never truncated to its last set field.
func EncodeHeader(buf []byte, h *Header) ([]byte, error) {
	fields := make([]interface{}, 5)
	if h != nil {
		if h.Durable != nil {
			fields[0] = Tagged{Type: KindBool, Value: *h.Durable}
		}
		if h.Priority != nil {
			fields[1] = Tagged{Type: KindUbyte, Value: *h.Priority}
		}
		if h.TTL != nil {
			fields[2] = Tagged{Type: KindUint, Value: *h.TTL}
		}
		if h.FirstAcquirer != nil {
			fields[3] = Tagged{Type: KindBool, Value: *h.FirstAcquirer}
		}
		if h.DeliveryCount != nil {
			fields[4] = Tagged{Type: KindUint, Value: *h.DeliveryCount}
		}
	}
	body, err := EncodeList(nil, fields, true, true)
	if err != nil {
		return nil, wrapIndex(err, "header")
	}
	return appendDescribedSection(buf, descriptorHeader, body), nil
}

// EncodeProperties appends a Message's Properties as a described
// Properties section. The body is always the full 13-field list, in the
// fixed order documented on Properties. Most fields are forced to a
// specific AMQP type regardless of their Go host type; only MessageID
// and CorrelationID use the wildcard dispatch EncodeValue provides.
func EncodeProperties(buf []byte, p *Properties) ([]byte, error) {
	fields := make([]interface{}, 13)
	if p != nil {
		fields[0] = p.MessageID
		if len(p.UserID) > 0 {
			fields[1] = Tagged{Type: KindBinary, Value: p.UserID}
		}
		if p.To != nil {
			fields[2] = Tagged{Type: KindString, Value: *p.To}
		}
		if p.Subject != nil {
			fields[3] = Tagged{Type: KindString, Value: *p.Subject}
		}
		if p.ReplyTo != nil {
			fields[4] = Tagged{Type: KindString, Value: *p.ReplyTo}
		}
		fields[5] = p.CorrelationID
		if p.ContentType != nil {
			fields[6] = Tagged{Type: KindSymbol, Value: *p.ContentType}
		}
		if p.ContentEncoding != nil {
			fields[7] = Tagged{Type: KindSymbol, Value: *p.ContentEncoding}
		}
		if p.AbsoluteExpiryTime != nil {
			fields[8] = Tagged{Type: KindTimestamp, Value: *p.AbsoluteExpiryTime}
		}
		if p.CreationTime != nil {
			fields[9] = Tagged{Type: KindTimestamp, Value: *p.CreationTime}
		}
		if p.GroupID != nil {
			fields[10] = Tagged{Type: KindString, Value: *p.GroupID}
		}
		if p.GroupSequence != nil {
			fields[11] = Tagged{Type: KindUint, Value: *p.GroupSequence}
		}
		if p.ReplyToGroupID != nil {
			fields[12] = Tagged{Type: KindString, Value: *p.ReplyToGroupID}
		}
	}
	body, err := EncodeList(nil, fields, true, true)
	if err != nil {
		return nil, wrapIndex(err, "properties")
	}
	return appendDescribedSection(buf, descriptorProperties, body), nil
}

// EncodePayload appends msg's framed sections in order: Header (if set),
// Properties (if set), then exactly one body form — a described Data
// section per chunk, else a single AmqpValue section, else a single
// AmqpSequence section.
func EncodePayload(buf []byte, msg *Message) ([]byte, error) {
	if msg == nil {
		return buf, nil
	}

	var err error
	if msg.Header != nil {
		buf, err = EncodeHeader(buf, msg.Header)
		if err != nil {
			return nil, err
		}
	}
	if msg.Properties != nil {
		buf, err = EncodeProperties(buf, msg.Properties)
		if err != nil {
			return nil, err
		}
	}

	switch {
	case msg.Data != nil:
		for i, chunk := range msg.Data {
			body, err := EncodeBinary(nil, chunk, true, true)
			if err != nil {
				return nil, wrapIndex(err, "data chunk %d", i)
			}
			buf = appendDescribedSection(buf, descriptorData, body)
		}
	case msg.Value != nil:
		body, err := EncodeValue(nil, msg.Value, true, true)
		if err != nil {
			return nil, wrapIndex(err, "amqp-value body")
		}
		buf = appendDescribedSection(buf, descriptorAMQPValue, body)
	case msg.Sequence != nil:
		body, err := EncodeList(nil, msg.Sequence, true, true)
		if err != nil {
			return nil, wrapIndex(err, "amqp-sequence body")
		}
		buf = appendDescribedSection(buf, descriptorAMQPSequence, body)
	}

	return buf, nil
}
