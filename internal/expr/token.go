// Package expr evaluates arithmetic expressions over fractions, e.g.
// "1/2 + 3/4 * (2 - 0.5)".
package expr

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mesh-intelligence/fraction/pkg/fraction"
)

// ErrSyntax is returned for malformed expressions.
var ErrSyntax = errors.New("syntax error")

// Kind classifies a token.
type Kind int

// Token kinds.
const (
	Number Kind = iota
	Plus
	Minus
	Star
	Slash
	LParen
	RParen
)

var kindNames = [...]string{
	Number: "number",
	Plus:   "'+'",
	Minus:  "'-'",
	Star:   "'*'",
	Slash:  "'/'",
	LParen: "'('",
	RParen: "')'",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Token is a lexical unit of an expression.
type Token struct {
	Kind  Kind
	Text  string
	Pos   int               // byte offset in the input
	Value fraction.Fraction // set when Kind is Number
}

var operators = map[byte]Kind{
	'+': Plus,
	'-': Minus,
	'*': Star,
	'/': Slash,
	'(': LParen,
	')': RParen,
}

// Tokenize splits s into tokens. Whitespace is ignored.
//
// Numbers are integers, decimals ("0.75", "1e-3") or fraction literals.
// An integer immediately followed by '/' and another integer, with no
// whitespace, is one fraction literal: "3/4" is a single token while
// "3 / 4" is three. A literal never has a zero denominator, so "1/0"
// tokenizes as a division.
func Tokenize(s string) ([]Token, error) {
	var toks []Token
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '.' && (i+1 >= len(s) || !isDigit(s[i+1])):
			return nil, fmt.Errorf("%w: unexpected '.' at offset %d", ErrSyntax, i)
		case isDigit(c) || c == '.':
			end := scanNumber(s, i)
			text := s[i:end]
			v, err := fraction.Parse(text)
			if err != nil {
				return nil, fmt.Errorf("number %q at offset %d: %w", text, i, err)
			}
			toks = append(toks, Token{Kind: Number, Text: text, Pos: i, Value: v})
			i = end
		default:
			k, ok := operators[c]
			if !ok {
				r, _ := utf8.DecodeRuneInString(s[i:])
				if unicode.IsSpace(r) {
					i += utf8.RuneLen(r)
					continue
				}
				return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, r, i)
			}
			toks = append(toks, Token{Kind: k, Text: s[i : i+1], Pos: i})
			i++
		}
	}
	return toks, nil
}

// scanNumber returns the end offset of the number starting at s[i].
func scanNumber(s string, i int) int {
	j := digits(s, i)
	integer := true
	if j < len(s) && s[j] == '.' {
		integer = false
		j = digits(s, j+1)
	}
	if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
		k := j + 1
		if k < len(s) && (s[k] == '+' || s[k] == '-') {
			k++
		}
		if e := digits(s, k); e > k {
			integer = false
			j = e
		}
	}
	if integer && j+1 < len(s) && s[j] == '/' && isDigit(s[j+1]) {
		e := digits(s, j+1)
		if strings.Trim(s[j+1:e], "0") != "" {
			j = e
		}
	}
	return j
}

func digits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
