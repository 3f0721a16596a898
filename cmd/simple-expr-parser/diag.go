package main

import (
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"

	expr "github.com/kaeru82433413/simple-expr-parser"
)

// diagnose renders a parse or evaluation error for one input line,
// ending with a newline. Errors that point into the line get a caret
// aligned under the offending character.
func diagnose(src string, err error) string {
	if ie, ok := err.(expr.InputError); ok {
		return caret(src, ie.Pos()) + " " + message(err) + "\n"
	}
	return message(err) + "\n"
}

// message maps an error to a human-readable description. The library
// leaves all message formatting to us.
func message(err error) string {
	switch err := err.(type) {
	case *expr.ExprError:
		return "an expression is expected"
	case *expr.OperatorError:
		return "an operator or a close parenthesis is expected"
	case *expr.CloseError:
		return "there is no matching open parenthesis"
	case *expr.LiteralError:
		return err.Literal + " is too large to compute"
	}
	switch {
	case errors.Is(err, expr.ErrUnclosed):
		return "a parenthesis is never closed"
	case errors.Is(err, expr.ErrOverflow):
		return "arithmetic overflow during evaluation"
	case errors.Is(err, expr.ErrZeroDivision):
		return "division by zero during evaluation"
	}
	return err.Error()
}

// caret draws a ^ under the character at byte offset pos in src. The
// padding is measured in display columns, not bytes, so the caret lines
// up even after wide characters.
func caret(src string, pos int) string {
	if pos > len(src) {
		pos = len(src)
	}
	return strings.Repeat(" ", runewidth.StringWidth(src[:pos])) + "^"
}
