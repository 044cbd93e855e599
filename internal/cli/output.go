package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mesh-intelligence/fraction/pkg/fraction"
)

// value is the JSON form of a single result.
type value struct {
	Fraction fraction.Fraction `json:"fraction"`
	Decimal  float64           `json:"decimal"`
}

func newValue(f fraction.Fraction) value {
	return value{Fraction: f, Decimal: f.Float64()}
}

// printer writes results in the mode selected by flags and config.
type printer struct {
	w        io.Writer
	mode     string
	jsonMode bool
}

func (a *app) printer(w io.Writer) (*printer, error) {
	mode, err := a.outputMode()
	if err != nil {
		return nil, err
	}
	return &printer{w: w, mode: mode, jsonMode: a.config.GetBool(cfgKeyJSON)}, nil
}

// format renders f as text according to the output mode.
func (p *printer) format(f fraction.Fraction) string {
	switch p.mode {
	case outputDecimal:
		return formatDecimal(f)
	case outputBoth:
		return f.String() + " (" + formatDecimal(f) + ")"
	}
	return f.String()
}

func formatDecimal(f fraction.Fraction) string {
	return strconv.FormatFloat(f.Float64(), 'f', -1, 64)
}

// result prints one fraction.
func (p *printer) result(f fraction.Fraction) error {
	if p.jsonMode {
		return p.json(newValue(f))
	}
	_, err := fmt.Fprintln(p.w, p.format(f))
	return err
}

// json writes v as a single line of JSON.
func (p *printer) json(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(p.w, string(data))
	return err
}
