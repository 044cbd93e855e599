package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/fraction/pkg/fraction"
)

type conversion struct {
	Input    string            `json:"input"`
	Fraction fraction.Fraction `json:"fraction"`
	Decimal  float64           `json:"decimal"`
	Quotient float64           `json:"quotient"`
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert between fraction and decimal forms",
		Long: `Convert a fraction ("3/4"), integer or decimal ("0.75") and print the
reduced fraction, its value rounded to three decimals and the exact quotient.
Decimals are quantized to three digits: 0.3334 becomes 333/1000.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fraction.Parse(args[0])
			if err != nil {
				return err
			}
			c := conversion{
				Input:    args[0],
				Fraction: f,
				Decimal:  f.Float64(),
				Quotient: f.Quotient(),
			}
			a.log.Printf("convert %q -> %s", c.Input, c.Fraction)

			p, err := a.printer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if p.jsonMode {
				return p.json(c)
			}
			_, err = fmt.Fprintf(p.w, "%s = %s (%s)\n", c.Fraction, formatDecimal(f),
				strconv.FormatFloat(c.Quotient, 'g', -1, 64))
			return err
		},
	}
}
