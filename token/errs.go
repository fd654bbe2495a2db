package token

import (
	"errors"
	"fmt"
)

var (
	ErrExhausted = errors.New("no tokens left")
	ErrBadEscape = errors.New("bad escape")
)

// TokenizeErr records where in a record tokenization failed.
type TokenizeErr struct {
	Err    error
	Offset int
	Index  int
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, offset, index int) *TokenizeErr {
	return &TokenizeErr{Err: e, Offset: offset, Index: index}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at token %d (offset %d)", e.Err.Error(), e.Index, e.Offset)
}
