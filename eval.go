package expr

import "strconv"

// Eval evaluates the expression to an exact rational value. The only
// failures are ErrOverflow and ErrZeroDivision; the first failure in any
// operand or operation short-circuits the rest.
func (e *Expr) Eval() (Rat, error) {
	return e.root.eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (Rat, error) {
	e, err := Parse(src)
	if err != nil {
		return Rat{}, err
	}
	return e.Eval()
}

func (t term) eval() (Rat, error) {
	if t.sub != nil {
		return t.sub.eval()
	}
	return FromInteger(t.num), nil
}

// eval evaluates every operand, then resolves the operators in two
// left-to-right passes, one per precedence tier. Tier 0 runs first, so
// multiplication and division are fully applied before any addition or
// subtraction, and operators within a tier associate left. With only two
// tiers this is all the precedence resolution the grammar needs; more
// tiers would want precedence climbing in the parser instead.
func (g *group) eval() (Rat, error) {
	vals := make([]Rat, len(g.terms))
	for i, t := range g.terms {
		v, err := t.eval()
		if err != nil {
			return Rat{}, err
		}
		vals[i] = v
	}
	ops := g.ops
	for tier := 0; tier < 2; tier++ {
		var err error
		vals, ops, err = collapse(vals, ops, tier)
		if err != nil {
			return Rat{}, err
		}
	}
	return vals[0], nil
}

// collapse applies every operator of the given tier across the value
// sequence, accumulating left to right. Values joined by operators of
// other tiers are carried through unchanged for a later pass.
func collapse(vals []Rat, ops []Op, tier int) ([]Rat, []Op, error) {
	acc := []Rat{vals[0]}
	var rest []Op
	for i, op := range ops {
		v := vals[i+1]
		if op.tier() != tier {
			acc = append(acc, v)
			rest = append(rest, op)
			continue
		}
		r, err := op.apply(acc[len(acc)-1], v)
		if err != nil {
			return nil, nil, err
		}
		acc[len(acc)-1] = r
	}
	return acc, rest, nil
}

// apply combines two evaluated values with the operator, left operand
// first.
func (op Op) apply(l, r Rat) (Rat, error) {
	switch op {
	case Add:
		return l.Add(r)
	case Sub:
		return l.Sub(r)
	case Mul:
		return l.Mul(r)
	case Div:
		return l.Div(r)
	}
	panic("expr: invalid operator " + strconv.Itoa(int(op)))
}
