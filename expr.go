package expr

import (
	"strconv"
	"strings"
)

// Expr is a parsed expression that can be evaluated to an exact rational
// value. It is immutable once parsed.
type Expr struct {
	// root is the outermost group. Even a bare literal parses as a group
	// with one operand and no operators, which evaluates to the operand.
	root *group
}

// Op is a binary arithmetic operator.
type Op int8

const (
	Add Op = iota
	Sub
	Mul
	Div
)

// opFor returns the operator denoted by r, if any.
func opFor(r rune) (Op, bool) {
	switch r {
	case '+':
		return Add, true
	case '-':
		return Sub, true
	case '*':
		return Mul, true
	case '/':
		return Div, true
	}
	return 0, false
}

// tier returns the operator's precedence tier. Tier 0 binds tighter.
func (op Op) tier() int {
	switch op {
	case Mul, Div:
		return 0
	case Add, Sub:
		return 1
	}
	panic("expr: invalid operator " + strconv.Itoa(int(op)))
}

func (op Op) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	panic("expr: invalid operator " + strconv.Itoa(int(op)))
}

// term is one operand of a group: a literal, or a parenthesized subgroup
// when sub is non-nil.
type term struct {
	num uint64
	sub *group
}

// group is a sequence of operands and the operators between them, prior
// to precedence resolution. ops[i] joins terms[i] and terms[i+1].
type group struct {
	terms []term
	ops   []Op
}

// newGroup builds a group. Mismatched operand and operator counts are a
// bug in the caller, never a consequence of user input, so the check is a
// panic rather than an error.
func newGroup(terms []term, ops []Op) *group {
	if len(terms) != len(ops)+1 {
		panic("expr: group with " + strconv.Itoa(len(terms)) + " operands and " + strconv.Itoa(len(ops)) + " operators")
	}
	return &group{terms: terms, ops: ops}
}

// String reconstructs a canonical textual form of the expression, with
// spaces around operators and parentheses around nested groups.
func (e *Expr) String() string {
	var b strings.Builder
	e.root.fmt(&b)
	return b.String()
}

func (g *group) fmt(b *strings.Builder) {
	g.terms[0].fmt(b)
	for i, op := range g.ops {
		b.WriteByte(' ')
		b.WriteString(op.String())
		b.WriteByte(' ')
		g.terms[i+1].fmt(b)
	}
}

func (t term) fmt(b *strings.Builder) {
	if t.sub != nil {
		b.WriteByte('(')
		t.sub.fmt(b)
		b.WriteByte(')')
		return
	}
	b.WriteString(strconv.FormatUint(t.num, 10))
}
