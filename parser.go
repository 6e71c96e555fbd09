package yscl

import (
	"unicode"
	"unicode/utf8"
)

// unicodeEscapeDigits is the exact number of hex digits following \u.
const unicodeEscapeDigits = 6

// parser holds the state of a single parse. The stack of open frames stands
// in for the call stack of a recursive descent parser; its bottom frame is
// the implicit top-level map.
type parser struct {
	src      string
	cur      *cursor
	stack    []frame
	depth    int // Open lists and maps above the root.
	maxDepth int

	done bool // The root map was closed explicitly.
	doc  Map
}

// Parse parses a complete YSCL document and returns its top-level map.
//
// The first error aborts the parse. The error is one of *UnexpectedCharError,
// ErrUnexpectedEOI, *DuplicateKeyError or *NestingLimitError.
func Parse(src string, opts ...Option) (Map, error) {
	return newParser(src, opts...).parse()
}

// ParseBytes is like Parse but takes the source as a byte slice.
func ParseBytes(src []byte, opts ...Option) (Map, error) {
	return Parse(string(src), opts...)
}

// newParser creates a parser for src with the root map already open.
func newParser(src string, opts ...Option) *parser {
	p := &parser{
		src:      src,
		cur:      newCursor(src),
		stack:    make([]frame, 0, 8),
		maxDepth: DefaultMaxDepth,
	}
	p.stack = append(p.stack, newMapFrame())
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// parse drives the state machine over the whole input.
func (p *parser) parse() (Map, error) {
	for !p.done {
		i, c, valid, ok := p.cur.next()
		if !ok {
			return p.finish()
		}
		if !valid {
			return Map{}, unexpected(c, i)
		}
		if err := p.step(i, c); err != nil {
			return Map{}, err
		}
	}
	return p.doc, nil
}

// step dispatches one character on the kind of the top frame.
func (p *parser) step(i int, c rune) error {
	switch top := p.top(); top.kind {
	case frameAtom:
		return p.stepAtom(top, i, c)
	case frameList:
		return p.stepList(top, i, c)
	case frameMap:
		return p.stepMap(top, i, c)
	default:
		panic(internalErrorf("unknown frame kind %s", top.kind))
	}
}

func (p *parser) stepAtom(top *frame, i int, c rune) error {
	switch c {
	case '\n':
		// Atoms may not span lines.
		return unexpected(c, i)
	case '"':
		p.closeTop(Atom{Value: string(top.atom)})
	case '\\':
		return p.readEscape(top)
	default:
		top.atom = utf8.AppendRune(top.atom, c)
	}
	return nil
}

func (p *parser) stepList(top *frame, i int, c rune) error {
	first := p.cur.firstOnLine()
	switch {
	case c == ']' && (first || len(top.elements) == 0):
		p.closeTop(List{Elements: top.elements})
	case c == '"' && first:
		p.stack = append(p.stack, newAtomFrame())
	case (c == '{' || c == '[') && first:
		return p.openContainer(i, c)
	case c == '/' && first:
		return p.readComment()
	case unicode.IsSpace(c):
	default:
		return unexpected(c, i)
	}
	return nil
}

func (p *parser) stepMap(top *frame, i int, c rune) error {
	entry := &top.pending
	first := p.cur.firstOnLine()
	switch {
	case c == '}' && (first || len(top.entries) == 0):
		// An entry must be complete before its map closes.
		if !entry.empty() {
			return unexpected(c, i)
		}
		p.closeTop(Map{Entries: top.entries})
	case c == '\n':
		if !entry.empty() {
			return unexpected(c, i)
		}
	case c == '=':
		if entry.empty() {
			return unexpected(c, i)
		}
		key := entry.key(p.src)
		if j := top.findKey(key); j >= 0 {
			return &DuplicateKeyError{Key: key, Offset: top.keyOffsets[j]}
		}
		if entry.hasEqual {
			return unexpected(c, i)
		}
		entry.hasEqual = true
	case unicode.IsSpace(c):
		if !entry.empty() {
			entry.spaceAfterKey = true
		}
	case isIdentRune(c) && entry.empty():
		// Entries start their own line and keys never start with a digit.
		if !first || isDigit(byte(c)) {
			return unexpected(c, i)
		}
		entry.keyStart, entry.keyEnd = i, i+1
	case isIdentRune(c):
		if !entry.canExtendKey() {
			return unexpected(c, i)
		}
		entry.keyEnd = i + 1
	case c == '"' || c == '{' || c == '[':
		if !entry.hasEqual {
			return unexpected(c, i)
		}
		if c == '"' {
			p.stack = append(p.stack, newAtomFrame())
			return nil
		}
		return p.openContainer(i, c)
	case c == '/' && first:
		return p.readComment()
	default:
		return unexpected(c, i)
	}
	return nil
}

// openContainer pushes a list or map frame for the bracket c at offset i.
func (p *parser) openContainer(i int, c rune) error {
	if p.maxDepth > 0 && p.depth >= p.maxDepth {
		return &NestingLimitError{Offset: i, Limit: p.maxDepth}
	}
	p.depth++
	if c == '{' {
		p.stack = append(p.stack, newMapFrame())
	} else {
		p.stack = append(p.stack, newListFrame())
	}
	return nil
}

// readEscape decodes the escape sequence following a backslash in an atom.
func (p *parser) readEscape(top *frame) error {
	i, c, _, ok := p.cur.next()
	if !ok {
		return ErrUnexpectedEOI
	}

	switch c {
	case '\\', '"':
		top.atom = append(top.atom, byte(c))
	case 'n':
		top.atom = append(top.atom, '\n')
	case 'u':
		return p.readUnicodeEscape(top)
	default:
		return unexpected(c, i)
	}
	return nil
}

// readUnicodeEscape decodes the six hex digits of a \u escape. A value that
// is not a Unicode scalar value is reported at the last digit.
func (p *parser) readUnicodeEscape(top *frame) error {
	var (
		code     rune
		lastI    int
		lastChar rune
	)
	for n := 0; n < unicodeEscapeDigits; n++ {
		i, c, _, ok := p.cur.next()
		if !ok {
			return ErrUnexpectedEOI
		}
		if !isHexRune(c) {
			return unexpected(c, i)
		}
		code = code<<4 | hexValue(c)
		lastI, lastChar = i, c
	}

	if !utf8.ValidRune(code) {
		return unexpected(lastChar, lastI)
	}
	top.atom = utf8.AppendRune(top.atom, code)
	return nil
}

// readComment consumes a line comment whose first '/' was just read.
func (p *parser) readComment() error {
	i, c, _, ok := p.cur.next()
	if !ok {
		return ErrUnexpectedEOI
	}
	if c != '/' {
		return unexpected(c, i)
	}
	return p.cur.skipLine()
}

// closeTop pops the top frame, whose finished value is n, and reduces n into
// the frame beneath it.
func (p *parser) closeTop(n Node) {
	if len(p.stack) > 1 && p.top().kind != frameAtom {
		p.depth--
	}
	p.stack = p.stack[:len(p.stack)-1]
	p.reduce(n)
}

// reduce folds a completed node into the frame now on top of the stack. With
// an empty stack the node is the finished document.
func (p *parser) reduce(n Node) {
	if len(p.stack) == 0 {
		doc, ok := n.(Map)
		if !ok {
			panic(internalErrorf("document root is a %s, not a map", n.Kind()))
		}
		p.doc, p.done = doc, true
		return
	}

	top := p.top()
	switch top.kind {
	case frameList:
		top.elements = append(top.elements, n)
	case frameMap:
		if !top.pending.hasEqual {
			panic(internalErrorf("map value completed before '='"))
		}
		key, err := NewIdentifier(top.pending.key(p.src))
		if err != nil {
			panic(internalErrorf("pending key: %v", err))
		}
		top.entries = append(top.entries, MapEntry{Key: key, Value: n})
		top.keyOffsets = append(top.keyOffsets, top.pending.keyStart)
		top.pending = emptyEntry()
	default:
		panic(internalErrorf("cannot reduce a %s into a %s frame", n.Kind(), top.kind))
	}
}

// finish checks the stack shape once the input is exhausted: only the root
// map may remain open, with no entry in progress.
func (p *parser) finish() (Map, error) {
	if len(p.stack) != 1 {
		return Map{}, ErrUnexpectedEOI
	}
	root := &p.stack[0]
	if root.kind != frameMap || !root.pending.empty() {
		return Map{}, ErrUnexpectedEOI
	}
	return Map{Entries: root.entries}, nil
}

func (p *parser) top() *frame {
	if len(p.stack) == 0 {
		panic(internalErrorf("empty frame stack"))
	}
	return &p.stack[len(p.stack)-1]
}

func unexpected(c rune, i int) error {
	return &UnexpectedCharError{Char: c, Offset: i}
}

func hexValue(c rune) rune {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
