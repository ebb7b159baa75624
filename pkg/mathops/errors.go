package mathops

import "fmt"

// DivisionByZeroError reports a division or modulo whose computed divisor is
// exactly zero. It is detected during evaluation, never during parsing, and
// is always terminal for the call.
type DivisionByZeroError struct {
	// Op is the operation that failed, e.g. "/".
	Op string
}

func (e *DivisionByZeroError) Error() string {
	if e.Op == "" {
		return "division by zero"
	}
	return fmt.Sprintf("division by zero in %q", e.Op)
}

// DomainError reports an argument outside a function's valid domain, e.g.
// sqrt of a negative number or log of a non-positive value.
type DomainError struct {
	// Op is the function or operation whose domain was violated.
	Op string
	// Msg describes the violation.
	Msg string
}

func (e *DomainError) Error() string {
	if e.Op == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// domainErrf constructs a DomainError with a formatted message.
func domainErrf(op, format string, args ...any) *DomainError {
	return &DomainError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
