package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dbgcycles/cycles"
)

// ErrConjectureRefuted is returned when a conjectured count differs from enumeration.
var ErrConjectureRefuted = errors.New("conjectured count differs from enumeration")

// probe is one (σ, k) point of the sweep and its outcome.
type probe struct {
	sigma uint8
	order int

	applies     bool // false when no conjectured formula covers the point
	conjectured uint64
	enumerated  uint64
}

func newConjectureCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conjecture",
		Short: "Check the length k+3 conjecture against enumeration",
		Long: "Compare the conjectured count of simple cycles of length k+3 with enumeration,\n" +
			"scanning (σ, k) diagonally from (2, 2) so cheap instances come first.\n" +
			"Diagonal d holds the points with σ + k = d + 4.",
		Args: cobra.NoArgs,
		RunE: a.runConjecture,
	}
	cmd.Flags().Int("max-diagonal", 0, "last diagonal to scan (default from config)")
	cmd.Flags().Int("workers", 0, "concurrent evaluations (default from config)")

	return cmd
}

func (a *app) runConjecture(cmd *cobra.Command, _ []string) error {
	maxDiagonal, workers := a.cfg.MaxDiagonal, a.cfg.Workers
	if cmd.Flags().Changed("max-diagonal") {
		maxDiagonal, _ = cmd.Flags().GetInt("max-diagonal")
	}
	if cmd.Flags().Changed("workers") {
		workers, _ = cmd.Flags().GetInt("workers")
	}
	if maxDiagonal < 0 || workers < 1 {
		return fmt.Errorf("max-diagonal must be ≥ 0 and workers ≥ 1, got %d and %d", maxDiagonal, workers)
	}

	probes := diagonalProbes(maxDiagonal)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)
	for i := range probes {
		p := &probes[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return a.evaluate(p)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	refuted := 0
	for _, p := range probes {
		if !p.applies {
			continue
		}
		ok := p.conjectured == p.enumerated
		if !ok {
			refuted++
		}
		fmt.Fprintf(out, "(s=%d, k=%d)\t%d\t %s\t %d\n", p.sigma, p.order, p.conjectured, a.pal.verdict(ok), p.enumerated)
	}
	if refuted > 0 {
		return fmt.Errorf("%d point(s): %w", refuted, ErrConjectureRefuted)
	}

	return nil
}

// diagonalProbes lists the points of diagonals 0..maxDiagonal in scan order.
// Points with σ above cycles.MaxSigma are skipped.
func diagonalProbes(maxDiagonal int) []probe {
	var out []probe
	for y := 0; y <= maxDiagonal; y++ {
		for x := 0; x <= y; x++ {
			sigma := y - x + 2
			if sigma > cycles.MaxSigma {
				continue
			}
			out = append(out, probe{sigma: uint8(sigma), order: x + 2})
		}
	}

	return out
}

// evaluate fills p with the conjectured and enumerated counts of length k+3.
func (a *app) evaluate(p *probe) error {
	length := p.order + 3
	conj, err := cycles.CountWithFormula(length, p.order, p.sigma, true, a.opts()...)
	if err != nil {
		return err
	}
	if conj.Provenance() != cycles.ConjecturedFormula {
		return nil
	}
	enum, err := cycles.CountOnlyEnum(length, p.order, p.sigma, a.opts()...)
	if err != nil {
		return err
	}

	p.applies = true
	p.conjectured, _ = conj.Value()
	p.enumerated, _ = enum.Value()
	a.logger.Debug("conjecture probe",
		"sigma", p.sigma, "order", p.order, "conjectured", p.conjectured, "enumerated", p.enumerated)

	return nil
}
