package fraction

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// String returns f as "num/den", e.g. "-1/3" or "2/1".
func (f Fraction) String() string {
	return strconv.FormatInt(int64(f.num), 10) + "/" + strconv.FormatInt(int64(f.Den()), 10)
}

// WriteTo writes the String form of f to w.
func (f Fraction) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, f.String())
	return int64(n), err
}

// Read consumes two whitespace-separated decimal integers, numerator then
// denominator, from r and returns their normalized fraction. It uses the
// same grammar as Scan.
//
// Read returns io.EOF unwrapped when r is exhausted before the first
// integer, so callers can loop until EOF. Any other failure, including a
// zero denominator, wraps ErrParse. When r is not an io.RuneScanner one byte
// past the denominator may be consumed; wrap r in a bufio.Reader to read
// several fractions from one stream.
func Read(r io.Reader) (Fraction, error) {
	var f Fraction
	if _, err := fmt.Fscan(r, &f); err != nil {
		// fmt reports a Scanner's io.EOF as a bare io.ErrUnexpectedEOF.
		if err == io.ErrUnexpectedEOF {
			return Fraction{}, io.EOF
		}
		return Fraction{}, err
	}
	return f, nil
}

// Scan implements fmt.Scanner, so a Fraction can be passed to fmt.Fscan and
// friends. Integers are base 10 with an optional sign; prefixes such as 0x
// and digit separators are rejected. Verbs other than %v, %d and %s are
// rejected.
func (f *Fraction) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'v', 'd', 's':
	default:
		return fmt.Errorf("%w: bad verb %%%c", ErrParse, verb)
	}
	n, err := scanInt(state)
	if err != nil {
		return err
	}
	d, err := scanInt(state)
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: missing denominator: %w", ErrParse, io.ErrUnexpectedEOF)
	}
	if err != nil {
		return err
	}
	g, err := fromPair(n, d)
	if err != nil {
		return err
	}
	*f = g
	return nil
}

func scanInt(state fmt.ScanState) (int64, error) {
	tok, err := state.Token(true, isIntRune)
	if err != nil {
		return 0, err
	}
	if len(tok) == 0 {
		r, _, err := state.ReadRune()
		if err != nil {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("%w: unexpected %q", ErrParse, r)
	}
	n, err := strconv.ParseInt(string(tok), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return n, nil
}

func isIntRune(r rune) bool {
	return r == '-' || r == '+' || unicode.IsDigit(r)
}

// fromPair builds a fraction from parsed integers. Unlike New it reports
// every failure as ErrParse.
func fromPair(n, d int64) (Fraction, error) {
	if d == 0 {
		return Fraction{}, fmt.Errorf("%w: zero denominator in %d/%d", ErrParse, n, d)
	}
	if !inRange(n) || !inRange(d) {
		return Fraction{}, fmt.Errorf("%w: %d/%d: %w", ErrParse, n, d, ErrOverflow)
	}
	f, err := build(n, d)
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: %d/%d: %w", ErrParse, n, d, err)
	}
	return f, nil
}

// Parse parses s as "num/den", a bare integer "num", or a decimal literal
// such as "0.25" or "-1.5e2". Decimals go through FromFloat and are quantized
// to three digits. Surrounding whitespace and whitespace around the slash
// are ignored. Errors wrap ErrParse.
func Parse(s string) (Fraction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Fraction{}, fmt.Errorf("%w: empty string", ErrParse)
	}
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(num), 10, 64)
		if err != nil {
			return Fraction{}, fmt.Errorf("%w: numerator of %q: %w", ErrParse, s, err)
		}
		d, err := strconv.ParseInt(strings.TrimSpace(den), 10, 64)
		if err != nil {
			return Fraction{}, fmt.Errorf("%w: denominator of %q: %w", ErrParse, s, err)
		}
		return fromPair(n, d)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return fromPair(n, 1)
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	f, err := FromFloat(x)
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return f, nil
}

// MarshalText implements encoding.TextMarshaler. JSON encodes a Fraction as
// a string like "3/4".
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (f *Fraction) UnmarshalText(text []byte) error {
	g, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = g
	return nil
}
