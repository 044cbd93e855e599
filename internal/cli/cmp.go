package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/fraction/internal/expr"
	"github.com/mesh-intelligence/fraction/pkg/fraction"
)

// relations is the full set of comparisons between two values.
type relations struct {
	Eq     bool `json:"eq"`
	Ne     bool `json:"ne"`
	Lt     bool `json:"lt"`
	Le     bool `json:"le"`
	Gt     bool `json:"gt"`
	Ge     bool `json:"ge"`
	Approx bool `json:"approx"`
}

type comparison struct {
	A         fraction.Fraction `json:"a"`
	B         fraction.Fraction `json:"b"`
	Cmp       int               `json:"cmp"`
	Relations relations         `json:"relations"`
}

func compare(x, y fraction.Fraction) comparison {
	return comparison{
		A:   x,
		B:   y,
		Cmp: x.Cmp(y),
		Relations: relations{
			Eq:     x.Equal(y),
			Ne:     x.NotEqual(y),
			Lt:     x.Less(y),
			Le:     x.LessEqual(y),
			Gt:     x.Greater(y),
			Ge:     x.GreaterEqual(y),
			Approx: x.ApproxEqual(y, fraction.Tolerance),
		},
	}
}

var cmpSymbols = map[int]string{-1: "<", 0: "=", 1: ">"}

func newCmpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <a> <b>",
		Short: "Compare two values",
		Long: `Compare two values, each a fraction, number or expression, and print
their ordering followed by every relation between them.

Examples:
  fraction cmp 1/3 0.333
  fraction cmp -- -1/2 "1/4 - 1"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var vals [2]fraction.Fraction
			for i, s := range args {
				v, err := expr.Eval(s)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
				vals[i] = v
			}
			c := compare(vals[0], vals[1])
			a.log.Printf("cmp %s %s = %d", c.A, c.B, c.Cmp)

			p, err := a.printer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if p.jsonMode {
				return p.json(c)
			}
			r := c.Relations
			_, err = fmt.Fprintf(p.w, "%s %s %s\neq=%t ne=%t lt=%t le=%t gt=%t ge=%t approx=%t\n",
				p.format(c.A), cmpSymbols[c.Cmp], p.format(c.B),
				r.Eq, r.Ne, r.Lt, r.Le, r.Gt, r.Ge, r.Approx)
			return err
		},
	}
}
