package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/fraction/pkg/fraction"
)

func newReadCmd(a *app) *cobra.Command {
	var sum bool

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Read numerator/denominator pairs from stdin",
		Long: `Read whitespace-separated numerator and denominator pairs from stdin
until end of input and print each one normalized. With --sum only the total
is printed.

Example:
  printf '1 2\n6 -8\n' | fraction read`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.printer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			r := bufio.NewReader(cmd.InOrStdin())
			var total fraction.Fraction
			for n := 1; ; n++ {
				f, err := fraction.Read(r)
				if err == io.EOF {
					a.log.Printf("read %d pairs", n-1)
					break
				}
				if err != nil {
					return fmt.Errorf("pair %d: %w", n, err)
				}
				if !sum {
					if err := p.result(f); err != nil {
						return err
					}
					continue
				}
				if total, err = total.Add(f); err != nil {
					return fmt.Errorf("pair %d: %w", n, err)
				}
			}
			if sum {
				return p.result(total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&sum, "sum", false, "print only the sum of all pairs")
	return cmd
}
