// Package argline parses freeform chat argument text: one cursor walks the
// remaining input while flag handlers, looked up in a table, consume what
// they need. How a table is built (message flags, embed flags) is defined
// by callers; this package knows nothing about any particular grammar.
package argline

import (
	"errors"
	"fmt"
)

// UsageError is a user-facing parse or validation failure. The dispatch
// boundary relays its text back into the originating channel; anything
// that is not a UsageError is treated as an unexpected failure.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// Usagef returns a UsageError with a formatted message.
func Usagef(format string, a ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, a...)}
}

// IsUsage reports whether err is (or wraps) a UsageError.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
