package expr

import (
	"errors"
	"reflect"
	"testing"
)

func num(v uint64) term {
	return term{num: v}
}

func sub(g *group) term {
	return term{sub: g}
}

func TestParseTrees(t *testing.T) {
	one := num(1)
	two := num(2)
	three := num(3)
	// 1+2*3
	a := newGroup([]term{one, two, three}, []Op{Add, Mul})
	// (1+2*3)*2
	b := newGroup([]term{sub(a), two}, []Op{Mul})
	// 1 + (1+2*3) - 2 * ((1+2*3)*2) / 3
	c := newGroup([]term{one, sub(a), two, sub(b), three}, []Op{Add, Sub, Mul, Div})
	// (1)
	d := newGroup([]term{sub(newGroup([]term{one}, nil))}, nil)
	cases := []struct {
		name string
		src  string
		want *group
	}{
		{"flat", "1+2*3", a},
		{"paren", "( 1 +2*3) *2", b},
		{"nested", "1 + (1+2*3) - 2 * ((1+2*3) * 2 ) / 3", c},
		{"bare", "(1)", d},
		{"literal", "12", newGroup([]term{num(12)}, nil)},
		{"split-literal", "1 2", newGroup([]term{num(12)}, nil)},
	}
	for _, cs := range cases {
		t.Run(cs.name, func(t *testing.T) {
			e, err := Parse(cs.src)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", cs.src, err)
			}
			if !reflect.DeepEqual(e.root, cs.want) {
				t.Errorf("wrong tree for %q:\n\tgot  %+v\n\twant %+v", cs.src, e.root, cs.want)
			}
		})
	}
}

func TestParseWhitespaceInvariance(t *testing.T) {
	a, err := Parse("( 1 +2*3) *2")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("(1+2*3)*2")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.root, b.root) {
		t.Errorf("trees differ:\n\tgot  %+v\n\twant %+v", a.root, b.root)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", &ExprError{EOF: true, Col: 0}},
		{"blank", "   ", &ExprError{EOF: true, Col: 3}},
		{"letter", "a", &ExprError{Got: 'a', Col: 0}},
		{"trailing-op", "1+", &ExprError{EOF: true, Col: 2}},
		{"empty-paren", "()", &ExprError{Got: ')', Col: 1}},
		{"op-then-close", "(0+)", &ExprError{Got: ')', Col: 3}},
		{"unclosed", "(0", ErrUnclosed},
		{"unclosed-nested", "((1+2)", ErrUnclosed},
		{"stray-close", "0)", &CloseError{Col: 1}},
		{"no-op", "1 # 2", &OperatorError{Got: '#', Col: 2}},
		{"overflow", "99999999999999999999", &LiteralError{Literal: "99999999999999999999"}},
		{"overflow-max+1", "18446744073709551616", &LiteralError{Literal: "18446744073709551616"}},
		// Offsets are byte offsets, so multibyte runes count for their
		// encoded length.
		{"wide-rune", "あ", &ExprError{Got: 'あ', Col: 0}},
		{"wide-rune-after", "1+あ", &ExprError{Got: 'あ', Col: 2}},
		{"wide-rune-op", "12あ", &OperatorError{Got: 'あ', Col: 2}},
		{"wide-space", "\u3000)", &ExprError{Got: ')', Col: 3}},
	}
	for _, cs := range cases {
		t.Run(cs.name, func(t *testing.T) {
			e, err := Parse(cs.src)
			if err == nil {
				t.Fatalf("parsing %q succeeded as %v, want error %v", cs.src, e, cs.want)
			}
			if !errors.Is(err, cs.want) && !reflect.DeepEqual(err, cs.want) {
				t.Errorf("parsing %q: got error %#v, want %#v", cs.src, err, cs.want)
			}
		})
	}
}

func TestParseMaxLiteral(t *testing.T) {
	e, err := Parse("18446744073709551615")
	if err != nil {
		t.Fatalf("max uint64 literal failed to parse: %v", err)
	}
	want := newGroup([]term{num(18446744073709551615)}, nil)
	if !reflect.DeepEqual(e.root, want) {
		t.Errorf("wrong tree: got %+v, want %+v", e.root, want)
	}
}

func TestExprString(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"flat", "1+2*3", "1 + 2 * 3"},
		{"paren", "( 1 +2*3) *2", "(1 + 2 * 3) * 2"},
		{"bare", "(1)", "(1)"},
		{"div", "1/2", "1 / 2"},
	}
	for _, cs := range cases {
		t.Run(cs.name, func(t *testing.T) {
			e, err := Parse(cs.src)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", cs.src, err)
			}
			if got := e.String(); got != cs.want {
				t.Errorf("wrong formatting for %q: got %q, want %q", cs.src, got, cs.want)
			}
		})
	}
}

func TestGroupMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic from group with mismatched operand and operator counts")
		}
	}()
	newGroup([]term{num(1), num(2)}, nil)
}
