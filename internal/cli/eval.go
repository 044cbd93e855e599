package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/fraction/internal/expr"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expr>...",
		Short: "Evaluate an arithmetic expression",
		Long: `Evaluate an expression over fractions, integers and decimals.
Arguments are joined with spaces, so quoting is optional.

Examples:
  fraction eval 1/2 + 1/3
  fraction eval "(3/4 - 0.25) * 2"
  fraction eval -- -1/2 + 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := strings.Join(args, " ")
			a.log.Printf("eval %q", s)

			p, err := a.printer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			v, err := expr.Eval(s)
			if err != nil {
				return err
			}
			return p.result(v)
		},
	}
}
