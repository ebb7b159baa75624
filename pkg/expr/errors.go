package expr

import "strconv"

// SyntaxError indicates malformed input: an unknown character, an
// unrecognized identifier, unbalanced parentheses, a missing operand, or a
// malformed function call. It is detected during tokenizing or parsing,
// before any evaluation happens.
type SyntaxError struct {
	// Col is the 1-based column where the error was detected, or 0 when no
	// single position applies (e.g. empty input).
	Col int
	// Msg describes what went wrong.
	Msg string
}

func (e *SyntaxError) Error() string {
	if e.Col <= 0 {
		return "syntax error: " + e.Msg
	}
	return "syntax error at column " + strconv.Itoa(e.Col) + ": " + e.Msg
}

// Pos returns the column where the error was detected.
func (e *SyntaxError) Pos() int { return e.Col }

func syntaxErr(col int, msg string) *SyntaxError {
	return &SyntaxError{Col: col, Msg: msg}
}
