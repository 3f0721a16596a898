package expr

import (
	"errors"
	"strconv"
)

// ExprError is an error indicating that an operand was required but
// something else was found. It implements InputError.
type ExprError struct {
	// Got is the offending rune. It is meaningless when EOF is true.
	Got rune
	// EOF indicates that the input ended where an operand was required.
	EOF bool
	// Col is the byte offset of the offending rune, or the end of the
	// input when EOF is true.
	Col int
}

func (err *ExprError) Error() string {
	if err.EOF {
		return errpos(err.Col, "expected expression at end of input")
	}
	return errpos(err.Col, "expected expression, found "+strconv.QuoteRune(err.Got))
}

func (err *ExprError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating that an operator or a close
// parenthesis was required but something else was found. It implements
// InputError.
type OperatorError struct {
	// Got is the offending rune.
	Got rune
	// Col is the byte offset of the offending rune.
	Col int
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "expected operator or close parenthesis, found "+strconv.QuoteRune(err.Got))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// CloseError is an error indicating a close parenthesis with no matching
// open parenthesis. It implements InputError.
type CloseError struct {
	// Col is the byte offset of the close parenthesis.
	Col int
}

func (err *CloseError) Error() string {
	return errpos(err.Col, "close parenthesis with no open parenthesis")
}

func (err *CloseError) Pos() int {
	return err.Col
}

// ErrUnclosed indicates that the input ended inside an unclosed
// parenthesis. The failure is running out of input rather than any
// particular character, so it carries no position.
var ErrUnclosed = errors.New("open parenthesis with no close parenthesis")

// LiteralError is an error indicating a numeric literal too large to
// represent. It carries the literal text, not an offset.
type LiteralError struct {
	// Literal is the text of the literal.
	Literal string
}

func (err *LiteralError) Error() string {
	return "literal " + err.Literal + " does not fit in 64 bits"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every parse error
// tied to a particular place in the input implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset into the original input of the
	// character that caused the error, or of the position where a
	// character was expected.
	Pos() int
}

var (
	_ InputError = (*ExprError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*CloseError)(nil)
)
