package yscl

// Construction helpers for building trees in code without parsing. They
// produce the same values Parse would, so results compare equal with
// reflect.DeepEqual.
//
//	doc := yscl.NewMap(
//		yscl.Entry("name", yscl.NewAtom("demo")),
//		yscl.Entry("tags", yscl.NewList(yscl.NewAtom("x"), yscl.NewAtom("y"))),
//	)

// NewAtom returns an atom holding the decoded value v.
func NewAtom(v string) Atom {
	return Atom{Value: v}
}

// NewList returns a list of the given elements.
func NewList(elements ...Node) List {
	if len(elements) == 0 {
		return List{}
	}
	return List{Elements: elements}
}

// NewMap returns a map of the given entries in order. It panics if two
// entries share a key.
func NewMap(entries ...MapEntry) Map {
	if len(entries) == 0 {
		return Map{}
	}
	for i := range entries {
		for j := 0; j < i; j++ {
			if entries[i].Key == entries[j].Key {
				panic("yscl: duplicate key " + string(entries[i].Key))
			}
		}
	}
	return Map{Entries: entries}
}

// Entry builds a map entry. It panics if key is not a valid identifier.
func Entry(key string, value Node) MapEntry {
	return MapEntry{Key: MustIdentifier(key), Value: value}
}

// MustIdentifier is like NewIdentifier but panics on an invalid identifier.
func MustIdentifier(s string) Identifier {
	id, err := NewIdentifier(s)
	if err != nil {
		panic("yscl: " + err.Error())
	}
	return id
}

// Atoms returns a list of atoms, one per value.
func Atoms(values ...string) List {
	elements := make([]Node, len(values))
	for i, v := range values {
		elements[i] = NewAtom(v)
	}
	return NewList(elements...)
}
