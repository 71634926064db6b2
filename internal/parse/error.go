package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Sentinel errors identifying the kind of a ParseError, usable with
// errors.Is.
var (
	ErrUnmatchedBrace     = errors.New("unmatched brace")
	ErrUnmatchedScope     = errors.New("unmatched scope")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrMissingOperand     = errors.New("missing operand")
	ErrUnknownToken       = errors.New("unknown token")
	ErrBadScope           = errors.New("scope is not of the form [x-y]")
)

// Error reports a malformed pattern: the offending position, the
// underlying sentinel, and the source it was found in. It never leaves
// compilation with a partially usable Regex.
type Error struct {
	Source string
	Pos    int
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("waverex: %s at position %d: %s", e.Err, e.Pos, e.render(false))
}

func (e *Error) Unwrap() error { return e.Err }

// Render renders the source line with a caret under the failing
// position, colorizing the caret when color is true (callers writing to
// a terminal; plain text otherwise so captured Error() strings used in
// tests and logs stay stable across environments).
func (e *Error) Render(colorize bool) string {
	return e.render(colorize)
}

func (e *Error) render(colorize bool) string {
	var b strings.Builder
	b.WriteString(e.Source)
	b.WriteByte('\n')
	for i := 0; i < e.Pos && i < len(e.Source); i++ {
		b.WriteByte(' ')
	}
	caret := "^"
	if colorize {
		caret = color.New(color.FgRed, color.Bold).Sprint("^")
	}
	b.WriteString(caret)
	return b.String()
}
