package lsys

import (
	"errors"
	"fmt"
)

// Errors returned by parsing, evaluation and rendering. Use errors.Is to
// tell them apart; parse failures arrive wrapped in a *ParseError.
var (
	ErrMalformedRule       = errors.New("malformed rule")
	ErrUnexpectedChar      = errors.New("bad character")
	ErrUnterminatedBracket = errors.New("unterminated '['")
	ErrDanglingNumber      = errors.New("number not followed by '+' or '-'")
	ErrBadNumber           = errors.New("invalid number")
	ErrUndefinedSymbol     = errors.New("undefined symbol")
	ErrDegenerateGeometry  = errors.New("degenerate geometry")
	ErrTooManySegments     = errors.New("too many segments")
	ErrInvalidConfig       = errors.New("invalid config")
)

// ParseError describes where a rule or axiom failed to parse.
type ParseError struct {
	Input string // the text being parsed (a single line for rule blocks)
	Line  int    // 1-based line in a rule block, 0 for a single rule
	Pos   int    // byte offset into Input, -1 if not applicable
	Err   error  // one of the Err* sentinels
	Msg   string // extra detail, may be empty
}

func (e *ParseError) Error() string {
	s := e.Err.Error()
	if e.Msg != "" {
		s += " " + e.Msg
	}
	if e.Pos >= 0 {
		s = fmt.Sprintf("%s at position %d", s, e.Pos)
	}
	if e.Line > 0 {
		s = fmt.Sprintf("line %d: %s", e.Line, s)
	}
	return fmt.Sprintf("%s in %q", s, e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }
