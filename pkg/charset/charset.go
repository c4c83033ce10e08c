// Package charset implements the encoding capability consulted by the
// schema validation engine: a checker parameterized by a charset name that
// reports whether string values are representable in that charset.
//
// Charset names resolve through the WHATWG encoding index
// (golang.org/x/text/encoding/htmlindex), so the usual aliases work:
// "utf-8", "latin1", "iso-8859-1", "windows-1252", "shift_jis" and friends.
package charset

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Checker validates that string values are representable in one charset.
// Non-string values carry no encoding and always pass. A Checker is
// immutable and safe for concurrent use.
type Checker struct {
	name string
	enc  encoding.Encoding // nil for utf-8
}

// New resolves a charset name into a Checker. An empty name means utf-8.
func New(name string) (*Checker, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" || normalized == "utf-8" || normalized == "utf8" {
		return &Checker{name: "utf-8"}, nil
	}

	enc, err := htmlindex.Get(normalized)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", name, err)
	}
	return &Checker{name: normalized, enc: enc}, nil
}

// Name returns the charset this checker validates against.
func (c *Checker) Name() string { return c.name }

// Validate reports whether the value is representable in the charset. For
// utf-8 that means the string is well-formed; for other charsets, that
// every rune survives encoding.
func (c *Checker) Validate(value any) bool {
	s, ok := value.(string)
	if !ok {
		return true
	}
	if !utf8.ValidString(s) {
		return false
	}
	if c.enc == nil {
		return true
	}
	_, err := c.enc.NewEncoder().String(s)
	return err == nil
}
