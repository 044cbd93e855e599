package fraction

import (
	"fmt"
	"math"
	"math/big"
)

// quantum is the fixed denominator used when converting from float64:
// three decimal digits of precision.
const quantum = 1000

// Fraction is a rational number with int32 numerator and denominator.
//
// The denominator is stored biased by one so that the zero value is 0/1.
// Valid values are always in lowest terms with a positive denominator, and
// both parts lie in [-math.MaxInt32, math.MaxInt32]. Values may be copied
// freely and compared with == and !=.
type Fraction struct {
	num int32
	dm1 int32 // denominator minus one
}

// New returns num/den in lowest terms. It returns ErrInvalidArgument if den
// is zero and ErrOverflow if the reduced value needs math.MinInt32.
func New(num, den int32) (Fraction, error) {
	f, err := build(int64(num), int64(den))
	if err != nil {
		return Fraction{}, fmt.Errorf("new %d/%d: %w", num, den, err)
	}
	return f, nil
}

// MustNew is like New but panics on error.
func MustNew(num, den int32) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return f
}

// FromFloat converts x to a fraction with at most three decimal digits.
//
// The whole part is floor(x); the remainder is scaled by 1000 and rounded to
// the nearest integer, and the result is reduced. Digits past the third
// decimal place are lost: FromFloat(0.3334) is 333/1000.
// NaN and infinities return ErrInvalidArgument; values too large for the
// int32 range return ErrOverflow.
func FromFloat(x float64) (Fraction, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Fraction{}, fmt.Errorf("from float %v: %w", x, ErrInvalidArgument)
	}
	whole := math.Floor(x)
	scaled := whole*quantum + math.Round((x-whole)*quantum)
	if math.Abs(scaled) >= 1<<62 {
		return Fraction{}, fmt.Errorf("from float %v: %w", x, ErrOverflow)
	}
	f, err := build(int64(scaled), quantum)
	if err != nil {
		return Fraction{}, fmt.Errorf("from float %v: %w", x, err)
	}
	return f, nil
}

// FromBigRat converts r to a fraction if both parts fit.
func FromBigRat(r *big.Rat) (Fraction, error) {
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return Fraction{}, fmt.Errorf("from big.Rat %s: %w", r.RatString(), ErrOverflow)
	}
	f, err := build(r.Num().Int64(), r.Denom().Int64())
	if err != nil {
		return Fraction{}, fmt.Errorf("from big.Rat %s: %w", r.RatString(), err)
	}
	return f, nil
}

// build reduces num/den and checks the result against the int32 range.
// Callers guarantee |num| and |den| stay below 2^62.
func build(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrInvalidArgument
	}
	num, den = reduce(num, den)
	if !inRange(num) || !inRange(den) {
		return Fraction{}, ErrOverflow
	}
	return Fraction{num: int32(num), dm1: int32(den - 1)}, nil
}

// reduce divides num and den by their gcd and moves the sign to num.
// Zero reduces to 0/1. den must not be zero.
func reduce(num, den int64) (int64, int64) {
	if num == 0 {
		return 0, 1
	}
	g := int64(gcd(abs64(num), abs64(den)))
	num, den = num/g, den/g
	if den < 0 {
		num, den = -num, -den
	}
	return num, den
}

// gcd returns the greatest common divisor of a and b, Euclid's algorithm.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// inRange reports whether x fits the symmetric int32 range.
func inRange(x int64) bool {
	return x >= -math.MaxInt32 && x <= math.MaxInt32
}

// Num returns the numerator of f.
func (f Fraction) Num() int32 {
	return f.num
}

// Den returns the denominator of f. It is always positive.
func (f Fraction) Den() int32 {
	return f.dm1 + 1
}

// parts returns the numerator and denominator widened to int64.
func (f Fraction) parts() (int64, int64) {
	return int64(f.num), int64(f.dm1) + 1
}

// IsZero reports whether f is 0.
func (f Fraction) IsZero() bool {
	return f.num == 0
}

// IsInt reports whether f is a whole number.
func (f Fraction) IsInt() bool {
	return f.dm1 == 0
}

// Sign returns -1, 0 or 1 according to the sign of f.
func (f Fraction) Sign() int {
	switch {
	case f.num < 0:
		return -1
	case f.num > 0:
		return 1
	}
	return 0
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	return Fraction{num: -f.num, dm1: f.dm1}
}

// Abs returns |f|.
func (f Fraction) Abs() Fraction {
	if f.num < 0 {
		return f.Neg()
	}
	return f
}

// Inv returns 1/f, or ErrDivisionByZero if f is zero.
func (f Fraction) Inv() (Fraction, error) {
	if f.num == 0 {
		return Fraction{}, fmt.Errorf("invert %s: %w", f, ErrDivisionByZero)
	}
	n, d := f.parts()
	g, err := build(d, n)
	if err != nil {
		return Fraction{}, fmt.Errorf("invert %s: %w", f, err)
	}
	return g, nil
}

// Inc adds one to f in place and returns the new value (prefix ++).
// On overflow f is left unchanged.
func (f *Fraction) Inc() (Fraction, error) {
	return f.step(1, "increment")
}

// Dec subtracts one from f in place and returns the new value (prefix --).
func (f *Fraction) Dec() (Fraction, error) {
	return f.step(-1, "decrement")
}

// PostInc adds one to f in place and returns the value f held before
// (postfix ++).
func (f *Fraction) PostInc() (Fraction, error) {
	prev := *f
	if _, err := f.step(1, "increment"); err != nil {
		return prev, err
	}
	return prev, nil
}

// PostDec subtracts one from f in place and returns the value f held before
// (postfix --).
func (f *Fraction) PostDec() (Fraction, error) {
	prev := *f
	if _, err := f.step(-1, "decrement"); err != nil {
		return prev, err
	}
	return prev, nil
}

func (f *Fraction) step(delta int64, op string) (Fraction, error) {
	n, d := f.parts()
	g, err := build(n+delta*d, d)
	if err != nil {
		return *f, fmt.Errorf("%s %s: %w", op, *f, err)
	}
	*f = g
	return g, nil
}

// Quotient returns num/den as a float64 without rounding.
func (f Fraction) Quotient() float64 {
	n, d := f.parts()
	return float64(n) / float64(d)
}

// Float64 returns the value of f rounded half up to three decimal digits.
func (f Fraction) Float64() float64 {
	return math.Floor((f.Quotient()+0.0005)*quantum) / quantum
}

// BigRat returns f as a new big.Rat.
func (f Fraction) BigRat() *big.Rat {
	n, d := f.parts()
	return big.NewRat(n, d)
}
