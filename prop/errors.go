package prop

import "fmt"

// A MalformedExpressionError is returned when an expression cannot be converted or evaluated:
// unbalanced parentheses, unknown symbols, or a missing or extra operand.
// Pos is the index of the offending rune in Expr, or -1 when the problem is not tied to a position.
type MalformedExpressionError struct {
	Expr   string
	Pos    int
	Reason string
}

func (e *MalformedExpressionError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("malformed expression %q: %s", e.Expr, e.Reason)
	}
	return fmt.Sprintf("malformed expression %q at position %d: %s", e.Expr, e.Pos, e.Reason)
}

func malformed(expr string, pos int, format string, args ...interface{}) error {
	return &MalformedExpressionError{Expr: expr, Pos: pos, Reason: fmt.Sprintf(format, args...)}
}
