package tlist

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyList    = errors.New("no tokens left")
	ErrTypeMismatch = errors.New("next token wrong type")
	ErrMissingValue = errors.New("missing value")
	ErrEncode       = errors.New("encode error")
	ErrDecode       = errors.New("decode error")
	ErrRegistry     = errors.New("registry error")
)

// TypeMismatchErr is returned when a token of one kind is requested and
// a token of another kind is found. Index is the position of the token
// in the list as written, or -1 when not known.
type TypeMismatchErr struct {
	Got, Want Kind
	Index     int
}

func (e *TypeMismatchErr) Unwrap() error {
	return ErrTypeMismatch
}

func (e *TypeMismatchErr) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: got %s want %s", ErrTypeMismatch, e.Got, e.Want)
	}
	return fmt.Sprintf("%s at token %d: got %s want %s", ErrTypeMismatch, e.Index, e.Got, e.Want)
}

// TokenErr attaches a token position to an error.
type TokenErr struct {
	Err   error
	Index int
}

func (e *TokenErr) Unwrap() error {
	return e.Err
}

func (e *TokenErr) Error() string {
	return fmt.Sprintf("%s at token %d", e.Err.Error(), e.Index)
}

func encodeErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrEncode, fmt.Sprintf(format, args...))
}

func decodeErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDecode, fmt.Sprintf(format, args...))
}

func missingErr(name string, want Kind) error {
	return fmt.Errorf("%w: no %s found for %q", ErrMissingValue, want, name)
}

func missingKindErr(want Kind) error {
	return fmt.Errorf("%w: no %s found", ErrMissingValue, want)
}

func marshalerTypeErr(got, want Marshaler) error {
	return fmt.Errorf("%w: got %T want %T", ErrTypeMismatch, got, want)
}
