package expr

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Expr    = Group
// Group   = Operand { ('+' | '-' | '*' | '/') Operand }
// Operand = digits | '(' Group ')'

// Parse parses a line of text as an arithmetic expression. There is no
// separate lexing pass; the parser is a single forward cursor over src
// with tokenization interleaved, so every error reports the byte offset
// at which parsing stopped. The end of the input terminates the
// expression; an unterminated open parenthesis there is ErrUnclosed.
func Parse(src string) (*Expr, error) {
	p := parser{src: src}
	p.skip()
	g, err := p.group(true)
	if err != nil {
		return nil, err
	}
	return &Expr{root: g}, nil
}

// parser is a forward cursor over the source text. pos is a byte offset
// which, outside of next and skip, always points at the first
// non-whitespace byte not yet consumed.
type parser struct {
	src string
	pos int
}

// peek returns the rune at the cursor without consuming it. ok is false
// at the end of the input.
func (p *parser) peek() (r rune, ok bool) {
	r, sz := utf8.DecodeRuneInString(p.src[p.pos:])
	if sz == 0 {
		return 0, false
	}
	return r, true
}

// next consumes the rune at the cursor along with any whitespace
// following it.
func (p *parser) next() {
	_, sz := utf8.DecodeRuneInString(p.src[p.pos:])
	p.pos += sz
	p.skip()
}

// skip advances the cursor past whitespace.
func (p *parser) skip() {
	for {
		r, sz := utf8.DecodeRuneInString(p.src[p.pos:])
		if sz == 0 || !unicode.IsSpace(r) {
			return
		}
		p.pos += sz
	}
}

// operand parses a numeric literal or a parenthesized group.
func (p *parser) operand() (term, error) {
	c, ok := p.peek()
	if !ok {
		return term{}, &ExprError{EOF: true, Col: p.pos}
	}
	switch {
	case '0' <= c && c <= '9':
		var lit []byte
		for {
			c, ok := p.peek()
			if !ok || c < '0' || c > '9' {
				break
			}
			lit = append(lit, byte(c))
			p.next()
		}
		n, err := strconv.ParseUint(string(lit), 10, 64)
		if err != nil {
			return term{}, &LiteralError{Literal: string(lit)}
		}
		return term{num: n}, nil
	case c == '(':
		p.next()
		g, err := p.group(false)
		if err != nil {
			return term{}, err
		}
		return term{sub: g}, nil
	default:
		return term{}, &ExprError{Got: c, Col: p.pos}
	}
}

// group parses a sequence of operands joined by operators, up to a close
// parenthesis, or up to the end of the input when outermost.
func (p *parser) group(outermost bool) (*group, error) {
	t, err := p.operand()
	if err != nil {
		return nil, err
	}
	terms := []term{t}
	var ops []Op
	for {
		c, ok := p.peek()
		if !ok {
			break
		}
		if op, ok := opFor(c); ok {
			p.next()
			ops = append(ops, op)
			t, err := p.operand()
			if err != nil {
				return nil, err
			}
			terms = append(terms, t)
			continue
		}
		if c == ')' {
			if outermost {
				return nil, &CloseError{Col: p.pos}
			}
			p.next()
			return newGroup(terms, ops), nil
		}
		return nil, &OperatorError{Got: c, Col: p.pos}
	}
	if !outermost {
		return nil, ErrUnclosed
	}
	return newGroup(terms, ops), nil
}
