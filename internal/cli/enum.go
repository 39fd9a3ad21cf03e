package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dbgcycles/cycles"
	"github.com/katalvlaran/dbgcycles/words"
)

func newEnumCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enum",
		Short: "Enumerate simple cycles of the de Bruijn graph",
		Long: "Print the simple cycles of length --length in dBG(k, σ), one per line.\n" +
			"Without --length, every simple cycle is printed, grouped by length.",
		Args: cobra.NoArgs,
		RunE: a.runEnum,
	}
	addGraphFlags(cmd, "length of the cycles (0 for every length)")

	return cmd
}

func (a *app) runEnum(cmd *cobra.Command, _ []string) error {
	order, length, sigma, err := a.graphParams(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if length != 0 {
		cs, err := cycles.EnumFixedLength(length, order, sigma, a.opts()...)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "The %d simple cycles of length %d in dBG(%d, %d) are\n", len(cs), length, order, sigma)
		printCycles(out, cs)

		return nil
	}

	cs, err := cycles.EnumAll(order, sigma, a.opts()...)
	if err != nil {
		return err
	}
	cycles.SortByLength(cs)

	fmt.Fprintf(out, "In the de Bruijn graph dBG(%d, %d)...\n", order, sigma)
	current := 0
	for _, c := range cs {
		if c.Len() != current {
			current = c.Len()
			fmt.Fprintf(out, "\n%s\n", a.pal.heading(fmt.Sprintf("..the simple cycles of length %d", current)))
		}
		fmt.Fprintf(out, "  %s\n", c)
	}

	return nil
}

func printCycles(out io.Writer, cs []words.Cycle) {
	for _, c := range cs {
		fmt.Fprintf(out, "  %s\n", c)
	}
}
