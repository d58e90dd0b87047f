package fd

import (
	"fmt"
	"strings"
)

// ErrCopyrightTooLong indicates a "copyright" line longer than the 59
// characters a FNT copyright field can hold.
type ErrCopyrightTooLong struct{}

func (*ErrCopyrightTooLong) Error() string {
	return "fd: copyright line too long (max 59 characters)"
}

// ErrUnknownKeyword indicates a line that is neither a recognised
// attribute keyword nor a valid run of './-/x/#' glyph-row characters.
type ErrUnknownKeyword struct {
	Line  int
	Token string
}

func (e *ErrUnknownKeyword) Error() string {
	return fmt.Sprintf("fd: unknown keyword %q at line %d", e.Token, e.Line)
}

// ErrMissingChars indicates that one or more of the 256 required "char"
// blocks were absent from the file.
type ErrMissingChars struct {
	Indices []int
}

func (e *ErrMissingChars) Error() string {
	parts := make([]string, len(e.Indices))
	for i, idx := range e.Indices {
		parts[i] = fmt.Sprintf("%d", idx)
	}
	return "fd: missing characters " + strings.Join(parts, ",")
}
