// Package amqp implements the AMQP 1.0 type-system encoder: serialization
// of in-memory values into the wire representation defined by OASIS AMQP
// 1.0 Part 1 (Types), plus assembly of the framed body sections of an
// AMQP message payload (header, properties, application body).
//
// Decoding, transport, and link/session/connection state are not part of
// this package.
package amqp
