package yscl

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON encodes the atom as a JSON string.
func (a Atom) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Value)
}

// MarshalJSON encodes the list as a JSON array. An empty list encodes as [].
func (l List) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, el := range l.Elements {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := json.Marshal(el)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the map as a JSON object whose members appear in
// entry order.
func (m Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.Entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(string(e.Key))
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		b, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ToAny converts a tree into plain Go values: atoms become string, lists
// []any and maps map[string]any. Map order is lost.
func ToAny(n Node) any {
	switch v := n.(type) {
	case Atom:
		return v.Value
	case List:
		out := make([]any, len(v.Elements))
		for i, el := range v.Elements {
			out[i] = ToAny(el)
		}
		return out
	case Map:
		out := make(map[string]any, len(v.Entries))
		for _, e := range v.Entries {
			out[string(e.Key)] = ToAny(e.Value)
		}
		return out
	default:
		return nil
	}
}
