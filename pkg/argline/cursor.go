package argline

import (
	"strings"
	"unicode"
)

// Cursor holds the unconsumed suffix of the argument text. Every extraction
// consumes a prefix and leaves the cursor at the remainder; a cursor is
// owned by a single invocation and is never shared.
type Cursor struct {
	rest string
}

// NewCursor returns a cursor over s with surrounding whitespace trimmed.
func NewCursor(s string) *Cursor {
	return &Cursor{rest: strings.TrimSpace(s)}
}

// Rest returns the unconsumed text.
func (c *Cursor) Rest() string {
	return c.rest
}

// Empty reports whether all input has been consumed.
func (c *Cursor) Empty() bool {
	return c.rest == ""
}

// Trim drops leading and trailing whitespace from the unconsumed text.
func (c *Cursor) Trim() {
	c.rest = strings.TrimSpace(c.rest)
}

// TakeRest consumes and returns everything left on the cursor.
func (c *Cursor) TakeRest() string {
	s := c.rest
	c.rest = ""
	return s
}

// NextArg extracts one argument. A double-quoted argument is scanned with
// backslash escapes resolved in place; an unterminated quote consumes to
// the end of input. A bare argument is the longest leading run of
// non-whitespace characters. The remainder is trimmed either way.
func (c *Cursor) NextArg() (string, error) {
	c.Trim()
	if c.rest == "" {
		return "", Usagef("not enough arguments")
	}

	if c.rest[0] == '"' {
		var b strings.Builder
		escaped := false
		for i, r := range c.rest[1:] {
			switch {
			case escaped:
				b.WriteRune(unescape(r))
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				c.rest = strings.TrimSpace(c.rest[1+i+1:])
				return b.String(), nil
			default:
				b.WriteRune(r)
			}
		}
		// No closing quote: take what accumulated.
		c.rest = ""
		return b.String(), nil
	}

	end := strings.IndexFunc(c.rest, unicode.IsSpace)
	if end < 0 {
		return c.TakeRest(), nil
	}
	arg := c.rest[:end]
	c.rest = strings.TrimSpace(c.rest[end:])
	return arg, nil
}

// NextLine extracts everything up to the next line break.
func (c *Cursor) NextLine() (string, error) {
	c.Trim()
	if c.rest == "" {
		return "", Usagef("not enough lines")
	}
	end := strings.IndexByte(c.rest, '\n')
	if end < 0 {
		return c.TakeRest(), nil
	}
	line := strings.TrimRight(c.rest[:end], "\r")
	c.rest = strings.TrimSpace(c.rest[end+1:])
	return line, nil
}

// unescape maps a backslash-escaped character to its replacement. Anything
// outside the table passes through literally.
func unescape(r rune) rune {
	switch r {
	case 'r':
		return '\r'
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case '\\':
		return '\\'
	default:
		return r
	}
}
