package expr

import (
	"errors"
	"math/bits"
	"strconv"
)

// Evaluation errors. Every arithmetic failure is one of these two; in
// particular a zero divisor is always ErrZeroDivision, never reported as
// an overflow.
var (
	// ErrOverflow indicates an exact result whose reduced numerator or
	// denominator, or an intermediate cross product, does not fit in 64
	// bits.
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrZeroDivision indicates a division by exactly zero.
	ErrZeroDivision = errors.New("division by zero")
)

// Rat is an exact rational number. The numerator and denominator are
// kept coprime, with the sign stored separately so the magnitude bounds
// are those of uint64. The zero value is 0. Arithmetic on Rat is
// checked: results that cannot be represented fail with ErrOverflow
// rather than wrapping or losing precision.
type Rat struct {
	num, den uint64
	neg      bool
}

// FromInteger returns the rational representation of v.
func FromInteger(v uint64) Rat {
	return Rat{num: v, den: 1}
}

// Num returns the numerator of x in reduced form.
func (x Rat) Num() uint64 {
	return x.num
}

// Den returns the denominator of x in reduced form. It is always
// positive.
func (x Rat) Den() uint64 {
	if x.den == 0 {
		return 1
	}
	return x.den
}

// Sign returns -1 if x is negative, 0 if x is zero, and +1 if x is
// positive.
func (x Rat) Sign() int {
	switch {
	case x.num == 0:
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// IsZero reports whether x is exactly zero.
func (x Rat) IsZero() bool {
	return x.num == 0
}

// String formats x as "n" when integral and "n/d" otherwise, with a
// leading minus sign when negative.
func (x Rat) String() string {
	if x.num == 0 {
		return "0"
	}
	s := strconv.FormatUint(x.num, 10)
	if d := x.Den(); d != 1 {
		s += "/" + strconv.FormatUint(d, 10)
	}
	if x.neg {
		s = "-" + s
	}
	return s
}

// Add returns x+y.
func (x Rat) Add(y Rat) (Rat, error) {
	if x.IsZero() {
		return y, nil
	}
	if y.IsZero() {
		return x, nil
	}
	// Put both terms over the least common denominator. The cross terms
	// are the only place an intermediate can exceed the reduced result.
	g := gcd(x.Den(), y.Den())
	dx, dy := x.Den()/g, y.Den()/g
	den, err := mul(dx, y.Den())
	if err != nil {
		return Rat{}, err
	}
	tx, err := mul(x.num, dy)
	if err != nil {
		return Rat{}, err
	}
	ty, err := mul(y.num, dx)
	if err != nil {
		return Rat{}, err
	}
	var num uint64
	neg := x.neg
	switch {
	case x.neg == y.neg:
		var carry uint64
		num, carry = bits.Add64(tx, ty, 0)
		if carry != 0 {
			return Rat{}, ErrOverflow
		}
	case tx >= ty:
		num = tx - ty
	default:
		num = ty - tx
		neg = y.neg
	}
	if num == 0 {
		return Rat{den: 1}, nil
	}
	g = gcd(num, den)
	return Rat{num: num / g, den: den / g, neg: neg}, nil
}

// Sub returns x-y.
func (x Rat) Sub(y Rat) (Rat, error) {
	y.neg = !y.neg
	return x.Add(y)
}

// Mul returns x*y. The operands are cross-reduced by gcd before
// multiplying, so overflow is judged against the reduced magnitude of
// the result rather than an unreduced cross product.
func (x Rat) Mul(y Rat) (Rat, error) {
	if x.IsZero() || y.IsZero() {
		return Rat{den: 1}, nil
	}
	g1 := gcd(x.num, y.Den())
	g2 := gcd(y.num, x.Den())
	num, err := mul(x.num/g1, y.num/g2)
	if err != nil {
		return Rat{}, err
	}
	den, err := mul(x.Den()/g2, y.Den()/g1)
	if err != nil {
		return Rat{}, err
	}
	return Rat{num: num, den: den, neg: x.neg != y.neg}, nil
}

// Div returns x/y. A zero divisor fails with ErrZeroDivision; otherwise
// x is multiplied by the reciprocal of y under Mul's overflow policy.
func (x Rat) Div(y Rat) (Rat, error) {
	if y.IsZero() {
		return Rat{}, ErrZeroDivision
	}
	return x.Mul(Rat{num: y.Den(), den: y.num, neg: y.neg})
}

// mul is a checked uint64 multiplication.
func mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrOverflow
	}
	return lo, nil
}

// gcd returns the greatest common divisor of a and b, of which at least
// one must be nonzero.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
