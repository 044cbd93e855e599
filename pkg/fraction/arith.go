package fraction

import "fmt"

// Add returns f + g.
func (f Fraction) Add(g Fraction) (Fraction, error) {
	an, ad := f.parts()
	bn, bd := g.parts()
	return checked("add", f, g, an*bd+bn*ad, ad*bd)
}

// Sub returns f - g.
func (f Fraction) Sub(g Fraction) (Fraction, error) {
	an, ad := f.parts()
	bn, bd := g.parts()
	return checked("sub", f, g, an*bd-bn*ad, ad*bd)
}

// Mul returns f * g. A zero operand yields 0/1.
func (f Fraction) Mul(g Fraction) (Fraction, error) {
	an, ad := f.parts()
	bn, bd := g.parts()
	return checked("mul", f, g, an*bn, ad*bd)
}

// Div returns f / g, or ErrDivisionByZero if g is zero.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	an, ad := f.parts()
	bn, bd := g.parts()
	return checked("div", f, g, an*bd, ad*bn)
}

// checked finishes a binary operation on the widened intermediate num/den.
// The raw values must fit int32 before reduction, and the reduced values
// again after it.
func checked(op string, f, g Fraction, num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, opError(op, f, g, ErrDivisionByZero)
	}
	if !inRange(num) || !inRange(den) {
		return Fraction{}, opError(op, f, g, ErrOverflow)
	}
	num, den = reduce(num, den)
	if !inRange(num) || !inRange(den) {
		return Fraction{}, opError(op, f, g, ErrOverflow)
	}
	return Fraction{num: int32(num), dm1: int32(den - 1)}, nil
}

var opSymbols = map[string]string{
	"add": "+",
	"sub": "-",
	"mul": "*",
	"div": "/",
}

func opError(op string, f, g Fraction, err error) error {
	return fmt.Errorf("%s %s %s %s: %w", op, f, opSymbols[op], g, err)
}

// AddFloat returns f + x, converting x with FromFloat.
func (f Fraction) AddFloat(x float64) (Fraction, error) {
	return withFloat(x, f.Add)
}

// SubFloat returns f - x, converting x with FromFloat.
func (f Fraction) SubFloat(x float64) (Fraction, error) {
	return withFloat(x, f.Sub)
}

// MulFloat returns f * x, converting x with FromFloat.
func (f Fraction) MulFloat(x float64) (Fraction, error) {
	return withFloat(x, f.Mul)
}

// DivFloat returns f / x, converting x with FromFloat.
func (f Fraction) DivFloat(x float64) (Fraction, error) {
	return withFloat(x, f.Div)
}

// FloatAdd returns x + f, converting x with FromFloat.
func FloatAdd(x float64, f Fraction) (Fraction, error) {
	return withFloat(x, func(g Fraction) (Fraction, error) { return g.Add(f) })
}

// FloatSub returns x - f, converting x with FromFloat.
func FloatSub(x float64, f Fraction) (Fraction, error) {
	return withFloat(x, func(g Fraction) (Fraction, error) { return g.Sub(f) })
}

// FloatMul returns x * f, converting x with FromFloat.
func FloatMul(x float64, f Fraction) (Fraction, error) {
	return withFloat(x, func(g Fraction) (Fraction, error) { return g.Mul(f) })
}

// FloatDiv returns x / f, converting x with FromFloat.
func FloatDiv(x float64, f Fraction) (Fraction, error) {
	return withFloat(x, func(g Fraction) (Fraction, error) { return g.Div(f) })
}

func withFloat(x float64, op func(Fraction) (Fraction, error)) (Fraction, error) {
	g, err := FromFloat(x)
	if err != nil {
		return Fraction{}, err
	}
	return op(g)
}
