package amqp

import (
	"fmt"

	"github.com/pkg/errors"
)

// RangeError reports a value outside the declared range for its AMQP type,
// a variable-length payload whose encoded length would reach 2^32, or an
// unrecognized Tagged.Type kind.
type RangeError struct {
	Kind  string
	Value interface{}
	Msg   string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("amqp: %s out of range for %s: %v", e.Msg, e.Kind, e.Value)
}

func newRangeError(kind string, value interface{}, msg string) *RangeError {
	return &RangeError{Kind: kind, Value: value, Msg: msg}
}

// TypeError reports array elements that encode to differing constructors,
// or a Tagged value whose payload shape doesn't match its declared Type.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string {
	return "amqp: " + e.Msg
}

func newTypeError(msg string) *TypeError {
	return &TypeError{Msg: msg}
}

// wrapIndex attaches positional context (list index, map pair index,
// composite field name) to an error without losing the underlying
// RangeError/TypeError for callers that errors.As against it.
func wrapIndex(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}
