package yscl

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEOI is returned when the source ends while a value, an escape
// sequence, a comment opener or a map entry is still incomplete.
var ErrUnexpectedEOI = errors.New("unexpected end of input")

// UnexpectedCharError reports a character that is not allowed where it
// appears. Offset is the zero-based byte offset of Char in the source.
type UnexpectedCharError struct {
	Char   rune
	Offset int
}

func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("byte %d: unexpected character %q", e.Offset, e.Char)
}

// DuplicateKeyError reports a key used twice within the same map. Offset is
// the byte offset where the key first occurred in that map.
type DuplicateKeyError struct {
	Key    string
	Offset int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("byte %d: duplicate key '%s' in map", e.Offset, e.Key)
}

// NestingLimitError reports a list or map opened beyond the configured
// maximum depth. Offset is the byte offset of the opening bracket.
type NestingLimitError struct {
	Offset int
	Limit  int
}

func (e *NestingLimitError) Error() string {
	return fmt.Sprintf("byte %d: nesting exceeds maximum depth %d", e.Offset, e.Limit)
}

// InvalidIdentifierError is returned by NewIdentifier. Offset is the byte
// index of the first character that cannot appear at its position.
type InvalidIdentifierError struct {
	Input  string
	Offset int
}

func (e *InvalidIdentifierError) Error() string {
	if e.Input == "" {
		return "invalid identifier: empty string"
	}
	return fmt.Sprintf("invalid identifier %q: illegal character at byte %d", e.Input, e.Offset)
}

// Offset returns the byte offset carried by err, if it has one.
// ErrUnexpectedEOI has no offset. *InvalidIdentifierError reports the index
// within the rejected identifier.
func Offset(err error) (int, bool) {
	var (
		charErr  *UnexpectedCharError
		dupErr   *DuplicateKeyError
		depthErr *NestingLimitError
		idErr    *InvalidIdentifierError
	)
	switch {
	case errors.As(err, &charErr):
		return charErr.Offset, true
	case errors.As(err, &dupErr):
		return dupErr.Offset, true
	case errors.As(err, &depthErr):
		return depthErr.Offset, true
	case errors.As(err, &idErr):
		return idErr.Offset, true
	}
	return 0, false
}

// internalErrorf builds the panic value for a parser state the grammar
// cannot produce.
func internalErrorf(format string, args ...any) error {
	return fmt.Errorf("yscl: internal error: "+format, args...)
}
