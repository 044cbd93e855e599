package fraction

import (
	"cmp"
	"math"
)

// Tolerance is the default absolute tolerance for ApproxEqual.
const Tolerance = 0.0001

// Cmp returns -1, 0 or 1 as f is less than, equal to, or greater than g.
// The comparison is exact.
func (f Fraction) Cmp(g Fraction) int {
	an, ad := f.parts()
	bn, bd := g.parts()
	return cmp.Compare(an*bd, bn*ad)
}

// Equal reports whether f == g.
func (f Fraction) Equal(g Fraction) bool { return f.Cmp(g) == 0 }

// NotEqual reports whether f != g.
func (f Fraction) NotEqual(g Fraction) bool { return f.Cmp(g) != 0 }

// Less reports whether f < g.
func (f Fraction) Less(g Fraction) bool { return f.Cmp(g) < 0 }

// Greater reports whether f > g.
func (f Fraction) Greater(g Fraction) bool { return f.Cmp(g) > 0 }

// LessEqual reports whether f <= g.
func (f Fraction) LessEqual(g Fraction) bool { return f.Cmp(g) <= 0 }

// GreaterEqual reports whether f >= g.
func (f Fraction) GreaterEqual(g Fraction) bool { return f.Cmp(g) >= 0 }

// The float comparisons convert x with FromFloat and compare exactly, so
// they agree with the mixed arithmetic: f.EqualFloat(x) holds exactly when
// f.SubFloat(x) is zero. For the reversed operand order use the mirrored
// method, e.g. x < f is f.GreaterFloat(x). NaN is unordered: every
// comparison with it is false except NotEqualFloat.

// EqualFloat reports whether f == x.
func (f Fraction) EqualFloat(x float64) bool {
	c, ok := f.CmpFloat(x)
	return ok && c == 0
}

// NotEqualFloat reports whether f != x.
func (f Fraction) NotEqualFloat(x float64) bool {
	return !f.EqualFloat(x)
}

// LessFloat reports whether f < x.
func (f Fraction) LessFloat(x float64) bool {
	c, ok := f.CmpFloat(x)
	return ok && c < 0
}

// GreaterFloat reports whether f > x.
func (f Fraction) GreaterFloat(x float64) bool {
	c, ok := f.CmpFloat(x)
	return ok && c > 0
}

// LessEqualFloat reports whether f <= x.
func (f Fraction) LessEqualFloat(x float64) bool {
	c, ok := f.CmpFloat(x)
	return ok && c <= 0
}

// GreaterEqualFloat reports whether f >= x.
func (f Fraction) GreaterEqualFloat(x float64) bool {
	c, ok := f.CmpFloat(x)
	return ok && c >= 0
}

// CmpFloat compares f with x like Cmp. The boolean is false when x is NaN.
func (f Fraction) CmpFloat(x float64) (int, bool) {
	if math.IsNaN(x) {
		return 0, false
	}
	g, err := FromFloat(x)
	if err != nil {
		// x does not fit once quantized; compare the quotients instead.
		return cmp.Compare(f.Quotient(), x), true
	}
	return f.Cmp(g), true
}

// ApproxEqual reports whether the quotients of f and g differ by less than
// tol.
func (f Fraction) ApproxEqual(g Fraction, tol float64) bool {
	return math.Abs(f.Quotient()-g.Quotient()) < tol
}

// ApproxEqualFloat reports whether the quotient of f differs from x by less
// than tol.
func (f Fraction) ApproxEqualFloat(x, tol float64) bool {
	return math.Abs(f.Quotient()-x) < tol
}
