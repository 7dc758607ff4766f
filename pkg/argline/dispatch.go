package argline

import (
	"context"
	"regexp"
	"strings"
)

// Rest is the reserved table key used when the next token is not
// flag-shaped: its handler receives the cursor with all trailing text
// still on it.
const Rest = "rest"

// Handler consumes whatever further text its flag needs from the cursor.
// Handlers may call out to external collaborators (channel or user
// lookups), hence the context.
type Handler func(ctx context.Context, c *Cursor) error

// Table maps flag names to handlers. Aliases are extra keys pointing at
// the same handler.
type Table map[string]Handler

var flagShaped = regexp.MustCompile(`^-\w`)

// Dispatch runs the flag loop: while the cursor is non-empty, pick the
// next flag name (or Rest when the remainder is not flag-shaped), look it
// up in the table and invoke the handler. An unknown flag aborts with a
// UsageError naming it. Every iteration consumes at least the flag token,
// so the loop terminates on any input.
func Dispatch(ctx context.Context, c *Cursor, table Table) error {
	for c.Trim(); !c.Empty(); c.Trim() {
		name := Rest
		if flagShaped.MatchString(c.rest) {
			arg, err := c.NextArg()
			if err != nil {
				return err
			}
			name = strings.TrimPrefix(arg, "-")
		}

		h, ok := table[name]
		if !ok {
			if name == Rest {
				return Usagef("unexpected argument: %s", c.Rest())
			}
			return Usagef("unexpected argument: -%s", name)
		}
		if err := h(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
