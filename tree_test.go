package yscl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentifier(t *testing.T) {
	f := func(name, input string, wantOffset int) {
		t.Helper()
		t.Run(name, func(t *testing.T) {
			t.Helper()
			id, err := NewIdentifier(input)
			if wantOffset < 0 {
				require.NoError(t, err)
				assert.Equal(t, input, id.String())
				return
			}

			var idErr *InvalidIdentifierError
			require.ErrorAs(t, err, &idErr)
			assert.Equal(t, input, idErr.Input)
			assert.Equal(t, wantOffset, idErr.Offset)
		})
	}

	f("simple", "abc", -1)
	f("underscore", "_", -1)
	f("mixed", "a_B9", -1)
	f("upper", "ABC", -1)
	f("empty", "", 0)
	f("leading_digit", "9abc", 0)
	f("dash", "ab-c", 2)
	f("space", "a b", 1)
	f("non_ascii", "aé", 1)
	f("non_ascii_first", "éa", 0)
}

func TestInvalidIdentifierError(t *testing.T) {
	_, err := NewIdentifier("")
	assert.EqualError(t, err, "invalid identifier: empty string")

	_, err = NewIdentifier("a.b")
	assert.EqualError(t, err, `invalid identifier "a.b": illegal character at byte 1`)
}

func TestMustIdentifier(t *testing.T) {
	assert.Equal(t, Identifier("ok"), MustIdentifier("ok"))
	assert.Panics(t, func() { MustIdentifier("not ok") })
	assert.Panics(t, func() { Entry("1st", NewAtom("x")) })
}

func TestKind(t *testing.T) {
	assert.Equal(t, KindAtom, NewAtom("x").Kind())
	assert.Equal(t, KindList, NewList().Kind())
	assert.Equal(t, KindMap, NewMap().Kind())

	assert.Equal(t, "atom", KindAtom.String())
	assert.Equal(t, "list", KindList.String())
	assert.Equal(t, "map", KindMap.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestMapAccess(t *testing.T) {
	doc := NewMap(
		Entry("name", NewAtom("demo")),
		Entry("deps", NewMap(
			Entry("a", NewAtom("1.0")),
			Entry("b", NewMap(Entry("c", NewAtom("deep")))),
		)),
		Entry("tags", Atoms("x", "y")),
	)

	assert.Equal(t, 3, doc.Len())
	assert.Equal(t, []string{"name", "deps", "tags"}, doc.Keys())

	n, ok := doc.Get("name")
	require.True(t, ok)
	assert.Equal(t, NewAtom("demo"), n)

	_, ok = doc.Get("missing")
	assert.False(t, ok)

	n, ok = doc.Lookup("deps", "b", "c")
	require.True(t, ok)
	assert.Equal(t, NewAtom("deep"), n)

	n, ok = doc.Lookup()
	require.True(t, ok)
	assert.Equal(t, doc, n)

	_, ok = doc.Lookup("deps", "missing")
	assert.False(t, ok)

	// Lookup does not descend into atoms or lists.
	_, ok = doc.Lookup("name", "x")
	assert.False(t, ok)
	_, ok = doc.Lookup("tags", "x")
	assert.False(t, ok)

	assert.Empty(t, NewMap().Keys())
}

func TestAs(t *testing.T) {
	var n Node = Atoms("x")

	l, ok := AsList(n)
	require.True(t, ok)
	assert.Equal(t, 1, l.Len())

	a, ok := AsAtom(l.Elements[0])
	require.True(t, ok)
	assert.Equal(t, "x", a.Value)

	_, ok = AsMap(n)
	assert.False(t, ok)
	_, ok = AsAtom(n)
	assert.False(t, ok)

	m, ok := AsMap(NewMap())
	require.True(t, ok)
	assert.Zero(t, m.Len())
}

func TestBuilders(t *testing.T) {
	assert.Equal(t, List{}, NewList())
	assert.Equal(t, Map{}, NewMap())
	assert.Equal(t, List{}, Atoms())
	assert.Equal(t, List{Elements: []Node{Atom{Value: "a"}, Atom{Value: "b"}}}, Atoms("a", "b"))

	assert.PanicsWithValue(t, "yscl: duplicate key a", func() {
		NewMap(Entry("a", NewAtom("1")), Entry("a", NewAtom("2")))
	})
}

func TestBuildersMatchParse(t *testing.T) {
	got, err := Parse("a = []\nb = {}\nc = [\n    \"x\"\n]")
	require.NoError(t, err)
	assert.Equal(t, NewMap(
		Entry("a", NewList()),
		Entry("b", NewMap()),
		Entry("c", Atoms("x")),
	), got)
}
