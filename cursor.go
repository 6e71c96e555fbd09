package yscl

import (
	"unicode"
	"unicode/utf8"
)

// cursor walks the source one codepoint at a time and counts the
// non-whitespace codepoints consumed on the current line.
type cursor struct {
	src     string // The complete source text.
	pos     int    // Byte offset of the next codepoint.
	lineNWS int    // Non-whitespace codepoints since the last '\n'.
}

// newCursor creates a cursor positioned at the start of src.
func newCursor(src string) *cursor {
	return &cursor{src: src}
}

// next consumes one codepoint and returns its byte offset. ok is false once
// the source is exhausted. An invalid UTF-8 byte is returned as
// utf8.RuneError with valid set to false.
func (c *cursor) next() (offset int, r rune, valid, ok bool) {
	if c.pos >= len(c.src) {
		return c.pos, 0, false, false
	}

	offset = c.pos
	r, size := utf8.DecodeRuneInString(c.src[c.pos:])
	c.pos += size
	valid = r != utf8.RuneError || size > 1

	switch {
	case r == '\n':
		c.lineNWS = 0
	case !unicode.IsSpace(r):
		c.lineNWS++
	}

	return offset, r, valid, true
}

// nonWhitespaceOnLine reports how many non-whitespace codepoints have been
// consumed since the most recent newline, including the last one returned
// by next.
func (c *cursor) nonWhitespaceOnLine() int {
	return c.lineNWS
}

// firstOnLine reports whether the codepoint just consumed is the only
// non-whitespace codepoint on its line so far.
func (c *cursor) firstOnLine() bool {
	return c.lineNWS == 1
}

// skipLine consumes everything up to and including the next newline.
// Comment text must still be valid UTF-8.
func (c *cursor) skipLine() error {
	for {
		i, r, valid, ok := c.next()
		if !ok || r == '\n' {
			return nil
		}
		if !valid {
			return &UnexpectedCharError{Char: r, Offset: i}
		}
	}
}
