// Package pointer implements RFC 6901 JSON Pointers.
package pointer

import (
	"fmt"
	"strings"
)

// Pointer is an ordered sequence of decoded reference tokens. The empty
// pointer addresses the whole document.
type Pointer []string

var (
	// unescaper decodes reference tokens. A single left-to-right pass
	// gets the RFC 6901 order right: in "~01" the "~0" is consumed
	// first, yielding the literal "~1".
	unescaper = strings.NewReplacer("~1", "/", "~0", "~")
	escaper   = strings.NewReplacer("~", "~0", "/", "~1")
)

// Parse parses a raw RFC 6901 pointer string. The empty string is the
// root pointer; anything else must begin with '/' or the parse fails
// with ErrSyntax.
func Parse(raw string) (Pointer, error) {
	if raw == "" {
		return nil, nil
	}
	if raw[0] != '/' {
		return nil, fmt.Errorf("%w: %q does not start with '/'", ErrSyntax, raw)
	}
	parts := strings.Split(raw[1:], "/")
	res := make(Pointer, len(parts))
	for i, part := range parts {
		res[i] = unescaper.Replace(part)
	}
	return res, nil
}

// String formats p back into RFC 6901 syntax, round-tripping Parse
// exactly.
func (p Pointer) String() string {
	if len(p) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, tok := range p {
		sb.WriteByte('/')
		sb.WriteString(escaper.Replace(tok))
	}
	return sb.String()
}

func (p Pointer) IsRoot() bool {
	return len(p) == 0
}

// Parent returns the pointer with the last token removed, and false if p
// is already the root.
func (p Pointer) Parent() (Pointer, bool) {
	if len(p) == 0 {
		return nil, false
	}
	return p[:len(p)-1], true
}

// Last returns the final reference token. It must not be called on the
// root pointer.
func (p Pointer) Last() string {
	return p[len(p)-1]
}

// IsPrefixOf reports whether p is a proper prefix of q, that is, whether
// q addresses a strict descendant of the location p addresses.
func (p Pointer) IsPrefixOf(q Pointer) bool {
	if len(p) >= len(q) {
		return false
	}
	for i, tok := range p {
		if q[i] != tok {
			return false
		}
	}
	return true
}

// IsValidArrayIndex reports whether tok is a valid array index token:
// "0", or a nonzero digit followed by digits. Leading zeros and signs
// are invalid, as is "-", which is not an index.
func IsValidArrayIndex(tok string) bool {
	if tok == "" {
		return false
	}
	if tok == "0" {
		return true
	}
	if tok[0] < '1' || tok[0] > '9' {
		return false
	}
	for i := 1; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}

// ArrayIndex parses tok as an array index, failing with ErrSyntax on any
// token IsValidArrayIndex rejects.
func ArrayIndex(tok string) (int, error) {
	if !IsValidArrayIndex(tok) {
		return 0, fmt.Errorf("%w: invalid array index %q", ErrSyntax, tok)
	}
	idx := 0
	for i := 0; i < len(tok); i++ {
		next := idx*10 + int(tok[i]-'0')
		if next < idx {
			return 0, fmt.Errorf("%w: array index %q overflows", ErrSyntax, tok)
		}
		idx = next
	}
	return idx, nil
}
