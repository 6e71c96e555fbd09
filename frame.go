package yscl

import "fmt"

// frameKind identifies what an open frame on the parse stack is building.
type frameKind int

const (
	frameAtom frameKind = iota // Quoted atom being read.
	frameList                  // List collecting elements.
	frameMap                   // Map collecting entries.
)

// String returns a human-readable representation of the frame kind.
func (k frameKind) String() string {
	switch k {
	case frameAtom:
		return "atom"
	case frameList:
		return "list"
	case frameMap:
		return "map"
	default:
		return fmt.Sprintf("frameKind(%d)", int(k))
	}
}

// frame is one unfinished node on the parse stack. Only the fields matching
// kind are in use.
type frame struct {
	kind frameKind

	atom []byte // Decoded atom bytes so far.

	elements []Node // Completed list elements.

	entries    []MapEntry // Completed map entries.
	keyOffsets []int      // Source offset of each entry key, parallel to entries.
	pending    pendingEntry
}

// pendingEntry is the map entry currently being read. A key is a contiguous
// run of identifier characters, so it is held as a span of the source.
type pendingEntry struct {
	keyStart      int  // Byte offset of the key's first character, -1 if no key yet.
	keyEnd        int  // Byte offset just past the key's last character.
	spaceAfterKey bool // Whitespace seen after the key.
	hasEqual      bool // '=' seen for this entry.
}

func newAtomFrame() frame {
	return frame{kind: frameAtom}
}

func newListFrame() frame {
	return frame{kind: frameList}
}

func newMapFrame() frame {
	return frame{kind: frameMap, pending: emptyEntry()}
}

// emptyEntry returns a pending entry with no key started.
func emptyEntry() pendingEntry {
	return pendingEntry{keyStart: -1}
}

// empty reports whether no key character has been seen for the entry.
func (e *pendingEntry) empty() bool {
	return e.keyStart < 0
}

// key returns the key text read so far.
func (e *pendingEntry) key(src string) string {
	if e.empty() {
		return ""
	}
	return src[e.keyStart:e.keyEnd]
}

// canExtendKey reports whether another identifier character may be appended
// to the key.
func (e *pendingEntry) canExtendKey() bool {
	return !e.spaceAfterKey && !e.hasEqual
}

// findKey returns the index of the completed entry with the given key, or -1.
func (f *frame) findKey(key string) int {
	for i, e := range f.entries {
		if string(e.Key) == key {
			return i
		}
	}
	return -1
}
