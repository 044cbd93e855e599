// Package fraction provides Fraction, a rational number with int32 numerator
// and denominator kept in lowest terms.
//
// Every value is reduced and carries its sign in the numerator, so two
// fractions are equal exactly when their fields are equal. Arithmetic is
// checked: an operation whose result does not fit the int32 range returns
// ErrOverflow instead of wrapping, and a zero divisor returns
// ErrDivisionByZero. Conversions from float64 are quantized to three decimal
// digits (see FromFloat).
//
// The zero value of Fraction is 0/1 and ready to use.
package fraction
