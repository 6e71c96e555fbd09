package yscl_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yscl-lang/go-yscl"
	"github.com/yscl-lang/go-yscl/internal/treefmt"
)

// expectSuccess parses src and compares the document with want, printing
// the shared prefix and a diff on mismatch.
func expectSuccess(t *testing.T, src string, want yscl.Map) {
	t.Helper()

	got, err := yscl.Parse(src)
	if err != nil {
		var charErr *yscl.UnexpectedCharError
		if errors.As(err, &charErr) {
			t.Fatalf("error at byte %d: unexpected %q\n\nREMAINING_SOURCE: %s\n\nCOMPLETE_SOURCE: %s",
				charErr.Offset, charErr.Char, src[charErr.Offset:], src)
		}
		t.Fatalf("unexpected error: %v", err)
	}

	if !assert.Equal(t, want, got) {
		t.Logf("COMMON:\n%s\n\nDIFF:\n%s", treefmt.Common(want, got), treefmt.Diff(want, got))
	}
}

// expectUnexpectedChar parses src and requires an UnexpectedCharError for
// char at the given byte offset.
func expectUnexpectedChar(t *testing.T, src string, char rune, offset int) {
	t.Helper()

	got, err := yscl.Parse(src)
	require.Error(t, err, "parsed successfully:\n%s", treefmt.Format(got))

	var charErr *yscl.UnexpectedCharError
	require.ErrorAs(t, err, &charErr)
	assert.Equal(t, char, charErr.Char, "character")
	assert.Equal(t, offset, charErr.Offset, "offset")

	// The offset must point at the reported character in the source.
	if char != utf8.RuneError {
		r, _ := utf8.DecodeRuneInString(src[charErr.Offset:])
		assert.Equal(t, char, r, "source character at offset %d", charErr.Offset)
	}
}

// expectUnexpectedEOI parses src and requires ErrUnexpectedEOI.
func expectUnexpectedEOI(t *testing.T, src string) {
	t.Helper()

	got, err := yscl.Parse(src)
	require.Error(t, err, "parsed successfully:\n%s", treefmt.Format(got))
	assert.ErrorIs(t, err, yscl.ErrUnexpectedEOI)
}

// expectDuplicateKey parses src and requires a DuplicateKeyError for key at
// the given byte offset.
func expectDuplicateKey(t *testing.T, src, key string, offset int) {
	t.Helper()

	got, err := yscl.Parse(src)
	require.Error(t, err, "parsed successfully:\n%s", treefmt.Format(got))

	var dupErr *yscl.DuplicateKeyError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, key, dupErr.Key)
	assert.Equal(t, offset, dupErr.Offset)
	assert.True(t, strings.HasPrefix(src[dupErr.Offset:], key), "source at offset %d does not start with %q", dupErr.Offset, key)
}
