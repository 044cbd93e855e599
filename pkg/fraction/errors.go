package fraction

import "errors"

// Construction and arithmetic errors. Returned errors wrap one of these and
// are matched with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrOverflow        = errors.New("integer overflow")
	ErrParse           = errors.New("invalid fraction input")
)
