package yscl

import (
	"fmt"
	"strings"
)

// Kind identifies the concrete type behind a Node.
type Kind int

const (
	KindAtom Kind = iota
	KindList
	KindMap
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindAtom:
		return "atom"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is a value in a YSCL document tree: an Atom, a List or a Map.
// The set of implementations is closed.
type Node interface {
	Kind() Kind
	isNode()
}

// Atom is a leaf string value.
//
// Value holds the decoded value, not the source spelling: the source atom
// "\"" is represented as Atom{Value: `"`}.
type Atom struct {
	Value string
}

// List is an ordered sequence of nodes.
type List struct {
	Elements []Node
}

// Map is an ordered sequence of uniquely keyed entries. Entry order is the
// order in which the entries appeared in the source.
type Map struct {
	Entries []MapEntry
}

// MapEntry is a single key/value pair of a Map.
type MapEntry struct {
	Key   Identifier
	Value Node
}

func (Atom) Kind() Kind { return KindAtom }
func (List) Kind() Kind { return KindList }
func (Map) Kind() Kind  { return KindMap }

func (Atom) isNode() {}
func (List) isNode() {}
func (Map) isNode()  {}

// Len returns the number of elements in the list.
func (l List) Len() int {
	return len(l.Elements)
}

// Len returns the number of entries in the map.
func (m Map) Len() int {
	return len(m.Entries)
}

// Get returns the value stored under key, if any.
//
// Lookup is a linear scan over the entries; maps are small and order is the
// primary concern.
func (m Map) Get(key string) (Node, bool) {
	for _, e := range m.Entries {
		if string(e.Key) == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Lookup walks nested maps following path and returns the node at the end.
// An empty path returns the map itself.
func (m Map) Lookup(path ...string) (Node, bool) {
	var cur Node = m
	for _, key := range path {
		mm, ok := cur.(Map)
		if !ok {
			return nil, false
		}
		if cur, ok = mm.Get(key); !ok {
			return nil, false
		}
	}
	return cur, true
}

// Keys returns the map keys in source order.
func (m Map) Keys() []string {
	keys := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		keys[i] = string(e.Key)
	}
	return keys
}

// AsAtom returns n as an Atom if it is one.
func AsAtom(n Node) (Atom, bool) {
	a, ok := n.(Atom)
	return a, ok
}

// AsList returns n as a List if it is one.
func AsList(n Node) (List, bool) {
	l, ok := n.(List)
	return l, ok
}

// AsMap returns n as a Map if it is one.
func AsMap(n Node) (Map, bool) {
	m, ok := n.(Map)
	return m, ok
}

// Identifier is a map key: one or more ASCII letters, digits or underscores,
// never starting with a digit.
type Identifier string

// NewIdentifier validates s as an identifier.
//
// On failure the returned *InvalidIdentifierError carries the byte index of
// the first illegal character. A leading digit and the empty string both
// report index 0.
func NewIdentifier(s string) (Identifier, error) {
	if s == "" {
		return "", &InvalidIdentifierError{Input: s, Offset: 0}
	}
	if isDigit(s[0]) {
		return "", &InvalidIdentifierError{Input: s, Offset: 0}
	}
	if i := strings.IndexFunc(s, func(r rune) bool { return !isIdentRune(r) }); i >= 0 {
		return "", &InvalidIdentifierError{Input: s, Offset: i}
	}
	return Identifier(s), nil
}

// String returns the identifier text.
func (id Identifier) String() string {
	return string(id)
}

// Helper functions for character classification.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentRune(r rune) bool {
	return r < 0x80 && (isAlpha(byte(r)) || isDigit(byte(r)) || r == '_')
}

func isHexRune(r rune) bool {
	return r < 0x80 && (isDigit(byte(r)) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F'))
}
