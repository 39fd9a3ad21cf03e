package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/dbgcycles/cycles"
)

// Semantic color palette.
var (
	colorProved      = lipgloss.Color("#00E676") // Green: proved formula, agreement
	colorConjectured = lipgloss.Color("#FFD700") // Gold: conjectured formula
	colorComputed    = lipgloss.Color("#5B8DEF") // Blue: enumeration
	colorMismatch    = lipgloss.Color("#FF5252") // Red: disagreement
	colorMuted       = lipgloss.Color("#8C8C8C") // Gray: no formula, headings
)

// palette renders provenance labels and verdicts, plain when disabled.
type palette struct {
	enabled bool

	proved      lipgloss.Style
	conjectured lipgloss.Style
	computed    lipgloss.Style
	mismatch    lipgloss.Style
	muted       lipgloss.Style
}

func newPalette(enabled bool) palette {
	return palette{
		enabled:     enabled,
		proved:      lipgloss.NewStyle().Foreground(colorProved),
		conjectured: lipgloss.NewStyle().Foreground(colorConjectured),
		computed:    lipgloss.NewStyle().Foreground(colorComputed),
		mismatch:    lipgloss.NewStyle().Foreground(colorMismatch).Bold(true),
		muted:       lipgloss.NewStyle().Foreground(colorMuted),
	}
}

func (p palette) render(s lipgloss.Style, text string) string {
	if !p.enabled {
		return text
	}

	return s.Render(text)
}

// provenance renders the label of c's provenance.
func (p palette) provenance(c cycles.Count) string {
	label := c.Provenance().String()
	switch c.Provenance() {
	case cycles.ProvedFormula:
		return p.render(p.proved, label)
	case cycles.ConjecturedFormula:
		return p.render(p.conjectured, label)
	case cycles.Enumerated:
		return p.render(p.computed, label)
	default:
		return p.render(p.muted, label)
	}
}

// verdict renders "===" on agreement and "=/=" otherwise.
func (p palette) verdict(ok bool) string {
	if ok {
		return p.render(p.proved, "===")
	}

	return p.render(p.mismatch, "=/=")
}

func (p palette) heading(text string) string {
	return p.render(p.muted, text)
}
