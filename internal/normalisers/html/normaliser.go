package html

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/custodia-labs/bilingual-preview/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.MarkupNormaliser = (*Normaliser)(nil)

// wrapperTags are the block elements stripped when they enclose a whole fragment.
var wrapperTags = map[atom.Atom]bool{
	atom.P:  true,
	atom.Ul: true,
	atom.Ol: true,
	atom.Li: true,
}

// Normaliser strips redundant block wrappers from markup fragments.
type Normaliser struct{}

// New creates a new markup normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise removes one enclosing wrapper at a time until the fragment is
// no longer wrapped as a whole. A fragment that is not wrapped is returned
// byte-for-byte unchanged, including malformed markup and sibling blocks.
func (n *Normaliser) Normalise(fragment string) string {
	current := fragment
	for {
		inner, ok := unwrap(strings.TrimSpace(current))
		if !ok {
			return current
		}
		current = inner
	}
}

// unwrap reports whether s is exactly one wrapper element and returns its
// raw inner markup with surrounding line breaks removed. Nesting of the same
// tag is balanced by depth, so "<p>a</p><p>b</p>" is not a single wrapper.
func unwrap(s string) (string, bool) {
	z := html.NewTokenizer(strings.NewReader(s))

	if z.Next() != html.StartTagToken {
		return "", false
	}
	wrapper := tagAtom(z)
	if !wrapperTags[wrapper] {
		return "", false
	}

	innerStart := len(z.Raw())
	offset := innerStart
	depth := 1

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// EOF before the wrapper closed.
			return "", false
		}
		tokenStart := offset
		offset += len(z.Raw())

		switch tt {
		case html.StartTagToken:
			if tagAtom(z) == wrapper {
				depth++
			}
		case html.EndTagToken:
			if tagAtom(z) != wrapper {
				continue
			}
			depth--
			if depth > 0 {
				continue
			}
			if offset != len(s) {
				return "", false
			}
			raw := s[innerStart:tokenStart]
			if raw == "" {
				return "", false
			}
			inner := strings.Trim(raw, "\r\n")
			if inner == "" {
				// Line breaks only: keep the last one.
				inner = raw[len(raw)-1:]
			}
			return inner, true
		}
	}
}

// tagAtom returns the atom of the current tag token.
func tagAtom(z *html.Tokenizer) atom.Atom {
	name, _ := z.TagName()
	return atom.Lookup(name)
}
