// Package treefmt renders YSCL trees for test failure messages: an indented
// debug form, the part two trees have in common, and a line diff.
//
// The output is meant for people reading test logs. It is not YSCL source
// and is never parsed.
package treefmt

import (
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/yscl-lang/go-yscl"
)

// IndentIncrement is the number of spaces added per nesting level.
const IndentIncrement = 4

// Format returns the indented debug rendering of n.
func Format(n yscl.Node) string {
	return Common(n, n)
}

// Common renders the longest shared prefix of two trees. Rendering stops at
// the first atom, key, length or kind that differs.
func Common(left, right yscl.Node) string {
	var b strings.Builder
	s := newState(&b)
	s.writeCommon(left, right, 0)
	putState(s)
	return b.String()
}

// Diff returns a unified diff between the renderings of want and got, or the
// empty string when they render identically.
func Diff(want, got yscl.Node) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(Format(want)),
		B:        difflib.SplitLines(Format(got)),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

// state holds the rendering state for a single call.
type state struct {
	w   io.Writer
	err error
}

var statePool = sync.Pool{
	New: func() any {
		return new(state)
	},
}

// newState retrieves a new state from the pool.
func newState(w io.Writer) *state {
	s := statePool.Get().(*state)
	s.w = w
	return s
}

// putState returns a state to the pool.
func putState(s *state) {
	s.w = nil
	s.err = nil
	statePool.Put(s)
}

// write writes str, stopping immediately if an error has occurred.
func (s *state) write(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}

// writeCommon renders left while it matches right. It returns false at the
// first difference, leaving the output truncated there.
func (s *state) writeCommon(left, right yscl.Node, indent int) bool {
	pad := strings.Repeat(" ", indent)
	inner := strings.Repeat(" ", indent+IndentIncrement)

	switch l := left.(type) {
	case yscl.Atom:
		r, ok := right.(yscl.Atom)
		if !ok || l.Value != r.Value {
			return false
		}
		s.write(strconv.Quote(l.Value))

	case yscl.Map:
		r, ok := right.(yscl.Map)
		if !ok {
			return false
		}
		s.write("{")
		for i, le := range l.Entries {
			if i >= len(r.Entries) || le.Key != r.Entries[i].Key {
				return false
			}
			s.write("\n" + inner + string(le.Key) + " = ")
			if !s.writeCommon(le.Value, r.Entries[i].Value, indent+IndentIncrement) {
				return false
			}
		}
		if len(l.Entries) != len(r.Entries) {
			return false
		}
		s.write("\n" + pad + "}")

	case yscl.List:
		r, ok := right.(yscl.List)
		if !ok {
			return false
		}
		s.write("[")
		for i, le := range l.Elements {
			if i >= len(r.Elements) {
				return false
			}
			s.write("\n" + inner)
			if !s.writeCommon(le, r.Elements[i], indent+IndentIncrement) {
				return false
			}
		}
		if len(l.Elements) != len(r.Elements) {
			return false
		}
		s.write("\n" + pad + "]")

	default:
		return false
	}

	return s.err == nil
}
