// Package expr implements an exact-rational calculator for single-line
// arithmetic expressions.
//
// An expression is non-negative integer literals joined by +, -, * and /
// with the usual precedence, grouped by parentheses. Parse turns one line
// of input into an immutable tree, recording the byte offset of the
// offending character in every error so a caller can draw a caret under
// it. Evaluation produces an exact rational Rat; arithmetic never wraps
// or loses precision, failing with ErrOverflow or ErrZeroDivision
// instead.
package expr
