package codec

import (
	"errors"
	"fmt"
)

// Causes of a decode failure. A DecodeError always wraps one of these.
var (
	ErrTooFewFields  = errors.New("too few fields")
	ErrUnknownKind   = errors.New("unknown product kind")
	ErrInvalidNumber = errors.New("invalid number")
	ErrInvalidEnum   = errors.New("invalid enum value")
	ErrMissingField  = errors.New("missing variant field")
	ErrInvalidScore  = errors.New("invalid quality score")
	ErrLineTooLong   = errors.New("line too long")
)

// DecodeError describes a line that could not be turned into a product.
type DecodeError struct {
	Line  string
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode %q: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("decode %q: field %s: %v", e.Line, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
