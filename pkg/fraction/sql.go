package fraction

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
)

var (
	_ driver.Valuer = Fraction{}
	_ sql.Scanner   = (*NullFraction)(nil)
	_ driver.Valuer = NullFraction{}
)

// Value implements driver.Valuer. A Fraction is stored as its text form.
func (f Fraction) Value() (driver.Value, error) {
	return f.String(), nil
}

// NullFraction is a Fraction that may be SQL NULL. It implements sql.Scanner
// the same way sql.NullString does.
type NullFraction struct {
	Fraction Fraction
	Valid    bool // Valid is true if Fraction is not NULL
}

// Scan implements sql.Scanner. Text columns are parsed with Parse; integer
// and real columns are converted directly.
func (nf *NullFraction) Scan(src any) error {
	var (
		f   Fraction
		err error
	)
	switch v := src.(type) {
	case nil:
		*nf = NullFraction{}
		return nil
	case string:
		f, err = Parse(v)
	case []byte:
		f, err = Parse(string(v))
	case int64:
		f, err = fromPair(v, 1)
	case float64:
		f, err = FromFloat(v)
	default:
		return fmt.Errorf("%w: cannot scan %T into NullFraction", ErrParse, src)
	}
	if err != nil {
		return err
	}
	*nf = NullFraction{Fraction: f, Valid: true}
	return nil
}

// Value implements driver.Valuer.
func (nf NullFraction) Value() (driver.Value, error) {
	if !nf.Valid {
		return nil, nil
	}
	return nf.Fraction.Value()
}
