package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dbgcycles/cycles"
	"github.com/katalvlaran/dbgcycles/debruijn"
	"github.com/katalvlaran/dbgcycles/words"
)

// ErrMismatch is returned when the Lyndon enumeration and the DFS oracle disagree.
var ErrMismatch = errors.New("lyndon enumeration differs from graph search")

func newVerifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the Lyndon enumeration against a depth-first search",
		Long: "Enumerate every simple cycle of dBG(k, σ) twice, through perfect Lyndon words\n" +
			"and by depth-first search on the explicit graph, and compare them length by length.\n" +
			"Only practical for small graphs.",
		Args: cobra.NoArgs,
		RunE: a.runVerify,
	}
	addGraphFlags(cmd, "longest cycle length to compare (0 for every length)")

	return cmd
}

func (a *app) runVerify(cmd *cobra.Command, _ []string) error {
	order, length, sigma, err := a.graphParams(cmd)
	if err != nil {
		return err
	}

	g, err := debruijn.New(order, sigma)
	if err != nil {
		return err
	}
	if length == 0 || length > g.NodeCount() {
		length = g.NodeCount()
	}

	want, err := g.SimpleCycles(length, debruijn.WithContext(cmd.Context()))
	if err != nil {
		return err
	}
	got, err := cycles.EnumBoundedLength(length, order, sigma, a.opts()...)
	if err != nil {
		return err
	}
	cycles.SortByLength(got)

	for _, c := range got {
		if err := g.ValidateCycle(c); err != nil {
			return fmt.Errorf("cycle %v: %w", c, err)
		}
	}
	for _, c := range want {
		w, ok := cycles.WordOfCycle(c)
		if !ok || words.CompareCycles(cycles.MapWordToCycle(w, order), c) != 0 {
			return fmt.Errorf("dfs cycle %v has no Lyndon word: %w", c, ErrMismatch)
		}
	}

	gotByLen, wantByLen := groupByLength(got), groupByLength(want)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "dBG(%d, %d): %d nodes, %d edges\n", order, sigma, g.NodeCount(), g.EdgeCount())
	mismatches := 0
	for l := 1; l <= length; l++ {
		ok := slices.EqualFunc(gotByLen[l], wantByLen[l], func(x, y words.Cycle) bool {
			return words.CompareCycles(x, y) == 0
		})
		if !ok {
			mismatches++
		}
		fmt.Fprintf(out, "length %d:\tlyndon %d\t %s\t dfs %d\n", l, len(gotByLen[l]), a.pal.verdict(ok), len(wantByLen[l]))
	}
	if mismatches > 0 {
		return fmt.Errorf("%d length(s): %w", mismatches, ErrMismatch)
	}

	return nil
}

func groupByLength(cs []words.Cycle) map[int][]words.Cycle {
	out := make(map[int][]words.Cycle)
	for _, c := range cs {
		out[c.Len()] = append(out[c.Len()], c)
	}

	return out
}
