package expr

import (
	"fmt"

	"github.com/mesh-intelligence/fraction/pkg/fraction"
)

// Eval parses and evaluates s.
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = ("-" | "+") unary | primary
//	primary = number | "(" expr ")"
//
// Operators are left associative. Errors from the fraction package, such as
// fraction.ErrDivisionByZero or fraction.ErrOverflow, are wrapped and can be
// matched with errors.Is; malformed input wraps ErrSyntax.
func Eval(s string) (fraction.Fraction, error) {
	toks, err := Tokenize(s)
	if err != nil {
		return fraction.Fraction{}, err
	}
	if len(toks) == 0 {
		return fraction.Fraction{}, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	p := &parser{toks: toks}
	v, err := p.expr()
	if err != nil {
		return fraction.Fraction{}, err
	}
	if p.i < len(p.toks) {
		return fraction.Fraction{}, p.unexpected()
	}
	return v, nil
}

type parser struct {
	toks []Token
	i    int
}

// next consumes the current token if it is one of kinds.
func (p *parser) next(kinds ...Kind) (Token, bool) {
	if p.i >= len(p.toks) {
		return Token{}, false
	}
	t := p.toks[p.i]
	for _, k := range kinds {
		if t.Kind == k {
			p.i++
			return t, true
		}
	}
	return Token{}, false
}

func (p *parser) unexpected() error {
	if p.i >= len(p.toks) {
		return fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	}
	t := p.toks[p.i]
	return fmt.Errorf("%w: unexpected %s at offset %d", ErrSyntax, t.Kind, t.Pos)
}

func (p *parser) expr() (fraction.Fraction, error) {
	v, err := p.term()
	if err != nil {
		return v, err
	}
	for {
		op, ok := p.next(Plus, Minus)
		if !ok {
			return v, nil
		}
		w, err := p.term()
		if err != nil {
			return w, err
		}
		if op.Kind == Plus {
			v, err = v.Add(w)
		} else {
			v, err = v.Sub(w)
		}
		if err != nil {
			return v, fmt.Errorf("at offset %d: %w", op.Pos, err)
		}
	}
}

func (p *parser) term() (fraction.Fraction, error) {
	v, err := p.unary()
	if err != nil {
		return v, err
	}
	for {
		op, ok := p.next(Star, Slash)
		if !ok {
			return v, nil
		}
		w, err := p.unary()
		if err != nil {
			return w, err
		}
		if op.Kind == Star {
			v, err = v.Mul(w)
		} else {
			v, err = v.Div(w)
		}
		if err != nil {
			return v, fmt.Errorf("at offset %d: %w", op.Pos, err)
		}
	}
}

func (p *parser) unary() (fraction.Fraction, error) {
	if op, ok := p.next(Minus, Plus); ok {
		v, err := p.unary()
		if err != nil || op.Kind == Plus {
			return v, err
		}
		return v.Neg(), nil
	}
	return p.primary()
}

func (p *parser) primary() (fraction.Fraction, error) {
	if t, ok := p.next(Number); ok {
		return t.Value, nil
	}
	if _, ok := p.next(LParen); ok {
		v, err := p.expr()
		if err != nil {
			return v, err
		}
		if _, ok := p.next(RParen); !ok {
			return v, p.unexpected()
		}
		return v, nil
	}
	return fraction.Fraction{}, p.unexpected()
}
