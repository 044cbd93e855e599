package fraction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type binaryCase struct {
	name    string
	a, b    Fraction
	want    Fraction
	wantErr error
}

func runBinary(t *testing.T, op func(a, b Fraction) (Fraction, error), tests []binaryCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := op(tt.a, tt.b)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdd(t *testing.T) {
	runBinary(t, Fraction.Add, []binaryCase{
		{name: "thirds and halves", a: MustNew(1, 2), b: MustNew(1, 3), want: MustNew(5, 6)},
		{name: "cancel to zero", a: MustNew(1, 2), b: MustNew(-1, 2), want: Fraction{}},
		{name: "negative quarters", a: MustNew(-1, 4), b: MustNew(-1, 4), want: MustNew(-1, 2)},
		{name: "zero value operand", a: Fraction{}, b: MustNew(2, 7), want: MustNew(2, 7)},
		{name: "max plus max", a: MustNew(math.MaxInt32, 1), b: MustNew(math.MaxInt32, 1), wantErr: ErrOverflow},
		{name: "denominator product too wide", a: MustNew(1, math.MaxInt32), b: MustNew(1, 2), wantErr: ErrOverflow},
	})
}

func TestSub(t *testing.T) {
	runBinary(t, Fraction.Sub, []binaryCase{
		{name: "positive result", a: MustNew(1, 2), b: MustNew(1, 3), want: MustNew(1, 6)},
		{name: "negative result", a: MustNew(1, 3), b: MustNew(1, 2), want: MustNew(-1, 6)},
		{name: "whole numbers", a: MustNew(5, 1), b: MustNew(7, 1), want: MustNew(-2, 1)},
		{name: "below symmetric range", a: MustNew(-math.MaxInt32, 1), b: MustNew(1, 1), wantErr: ErrOverflow},
	})
}

func TestMul(t *testing.T) {
	runBinary(t, Fraction.Mul, []binaryCase{
		{name: "reduces", a: MustNew(2, 3), b: MustNew(3, 4), want: MustNew(1, 2)},
		{name: "zero operand", a: Fraction{}, b: MustNew(5, 7), want: Fraction{}},
		{name: "zero right operand", a: MustNew(-5, 7), b: MustNew(0, 3), want: Fraction{}},
		{name: "negatives", a: MustNew(-1, 2), b: MustNew(-1, 2), want: MustNew(1, 4)},
		{name: "result too large", a: MustNew(1<<16, 1), b: MustNew(1<<16, 1), wantErr: ErrOverflow},
		{name: "raw product checked before reduction", a: MustNew(1<<30, 3), b: MustNew(3, 1<<30), wantErr: ErrOverflow},
	})
}

func TestDiv(t *testing.T) {
	runBinary(t, Fraction.Div, []binaryCase{
		{name: "by quarter", a: MustNew(1, 2), b: MustNew(1, 4), want: MustNew(2, 1)},
		{name: "by negative", a: MustNew(1, 2), b: MustNew(-1, 4), want: MustNew(-2, 1)},
		{name: "zero dividend", a: Fraction{}, b: MustNew(3, 4), want: Fraction{}},
		{name: "by zero", a: MustNew(1, 2), b: Fraction{}, wantErr: ErrDivisionByZero},
		{name: "zero by zero", a: Fraction{}, b: MustNew(0, 9), wantErr: ErrDivisionByZero},
		{name: "result too large", a: MustNew(math.MaxInt32, 1), b: MustNew(1, 2), wantErr: ErrOverflow},
	})
}

func TestArithmeticErrorMessage(t *testing.T) {
	_, err := MustNew(1, 2).Div(Fraction{})
	require.Error(t, err)
	assert.Equal(t, "div 1/2 / 0/1: division by zero", err.Error())

	_, err = MustNew(math.MaxInt32, 1).Add(MustNew(1, 1))
	require.Error(t, err)
	assert.Equal(t, "add 2147483647/1 + 1/1: integer overflow", err.Error())
}

var sample = []Fraction{
	MustNew(0, 1),
	MustNew(1, 2),
	MustNew(-1, 3),
	MustNew(7, 4),
	MustNew(-22, 7),
	MustNew(355, 113),
	MustNew(1000, 1),
	MustNew(-1, 1000),
}

func TestAddThenSubIsIdentity(t *testing.T) {
	for _, a := range sample {
		for _, b := range sample {
			sum, err := a.Add(b)
			require.NoError(t, err)
			back, err := sum.Sub(b)
			require.NoError(t, err)
			assert.True(t, back.Equal(a), "%s + %s - %s = %s", a, b, b, back)
		}
	}
}

func TestDivBySelfIsOne(t *testing.T) {
	one := MustNew(1, 1)
	for _, a := range sample {
		if a.IsZero() {
			continue
		}
		got, err := a.Div(a)
		require.NoError(t, err)
		assert.Equal(t, one, got, "%s / %s", a, a)
	}
}

func TestAddMatchesCrossMultiplication(t *testing.T) {
	for a := int32(-6); a <= 6; a++ {
		for b := int32(1); b <= 6; b++ {
			for c := int32(-6); c <= 6; c++ {
				for d := int32(-6); d <= 6; d++ {
					if d == 0 {
						continue
					}
					got, err := MustNew(a, b).Add(MustNew(c, d))
					require.NoError(t, err)
					assert.Equal(t, MustNew(a*d+c*b, b*d), got, "%d/%d + %d/%d", a, b, c, d)
				}
			}
		}
	}
}

func TestFloatOperands(t *testing.T) {
	tests := []struct {
		name string
		op   func() (Fraction, error)
		want Fraction
	}{
		{"AddFloat", func() (Fraction, error) { return MustNew(1, 2).AddFloat(0.25) }, MustNew(3, 4)},
		{"SubFloat", func() (Fraction, error) { return MustNew(1, 2).SubFloat(0.25) }, MustNew(1, 4)},
		{"MulFloat", func() (Fraction, error) { return MustNew(1, 2).MulFloat(0.5) }, MustNew(1, 4)},
		{"DivFloat", func() (Fraction, error) { return MustNew(1, 2).DivFloat(0.5) }, MustNew(1, 1)},
		{"FloatAdd", func() (Fraction, error) { return FloatAdd(0.5, MustNew(1, 3)) }, MustNew(5, 6)},
		{"FloatSub", func() (Fraction, error) { return FloatSub(1, MustNew(1, 4)) }, MustNew(3, 4)},
		{"FloatMul", func() (Fraction, error) { return FloatMul(0.5, MustNew(2, 3)) }, MustNew(1, 3)},
		{"FloatDiv", func() (Fraction, error) { return FloatDiv(1, MustNew(1, 4)) }, MustNew(4, 1)},
		{"quantized operand", func() (Fraction, error) { return Fraction{}.AddFloat(0.3334) }, MustNew(333, 1000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFloatOperandErrors(t *testing.T) {
	_, err := MustNew(1, 2).DivFloat(0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = FloatDiv(2, Fraction{})
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = MustNew(1, 2).AddFloat(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = FloatMul(1e12, MustNew(1, 2))
	assert.ErrorIs(t, err, ErrOverflow)
}
