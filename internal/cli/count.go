package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dbgcycles/cycles"
	"github.com/katalvlaran/dbgcycles/formula"
)

func newCountCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count simple cycles of the de Bruijn graph",
		Long: "Count the simple cycles of length --length in dBG(k, σ). Without --length,\n" +
			"every length from 1 to σ^k is reported. Each count is labelled with its\n" +
			"provenance: proved formula, conjectured formula or enumeration.",
		Args: cobra.NoArgs,
		RunE: a.runCount,
	}
	addGraphFlags(cmd, "length of the cycles (0 for every length)")
	cmd.Flags().Bool("only-formula", false, "never enumerate; report lengths without a closed form as \"no formula\"")

	return cmd
}

func (a *app) runCount(cmd *cobra.Command, _ []string) error {
	order, length, sigma, err := a.graphParams(cmd)
	if err != nil {
		return err
	}
	onlyFormula, _ := cmd.Flags().GetBool("only-formula")
	out := cmd.OutOrStdout()

	if length != 0 {
		c, err := cycles.CountWithFormula(length, order, sigma, onlyFormula, a.opts()...)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "There are %s simple cycles of length %d in the de Bruijn graph of order %d over the [0..%d) alphabet (%s)\n",
			countValue(c), length, order, sigma, a.pal.provenance(c))

		return nil
	}

	size, err := formula.Pow(uint64(sigma), uint64(order))
	if err != nil {
		return fmt.Errorf("dBG(%d, %d) has too many nodes: %w", order, sigma, err)
	}
	fmt.Fprintf(out, "Within dBG(%d, %d), one can find...\n\n", order, sigma)
	for l := uint64(1); l <= size; l++ {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		c, err := cycles.CountWithFormula(int(l), order, sigma, onlyFormula, a.opts()...)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "...simple cycles of length %d:\t%s\t(%s)\n", l, countValue(c), a.pal.provenance(c))
	}

	return nil
}

// countValue prints the cardinality, or "?" for NoFormula.
func countValue(c cycles.Count) string {
	if v, ok := c.Value(); ok {
		return fmt.Sprint(v)
	}

	return "?"
}
