package cycles

import (
	"fmt"

	"github.com/katalvlaran/dbgcycles/formula"
	"github.com/katalvlaran/dbgcycles/lyndon"
)

// Provenance tells how a Count was obtained.
type Provenance uint8

const (
	// NoFormula: no closed form applies and enumeration was declined.
	NoFormula Provenance = iota
	// ProvedFormula: value from a proved closed form.
	ProvedFormula
	// ConjecturedFormula: value from a conjectured closed form.
	ConjecturedFormula
	// Enumerated: value from direct enumeration of perfect Lyndon words.
	Enumerated
)

// String returns the label shown next to a count.
func (p Provenance) String() string {
	switch p {
	case ProvedFormula:
		return "proved"
	case ConjecturedFormula:
		return "conjectured"
	case Enumerated:
		return "computed"
	default:
		return "no formula"
	}
}

// Count is a cardinality tagged with its provenance. The value is only
// meaningful for ProvedFormula, ConjecturedFormula and Enumerated.
// Counts are comparable with ==.
type Count struct {
	source Provenance
	value  uint64
}

// Proved wraps a value obtained from a proved formula.
func Proved(v uint64) Count { return Count{source: ProvedFormula, value: v} }

// Conjectured wraps a value obtained from a conjectured formula.
func Conjectured(v uint64) Count { return Count{source: ConjecturedFormula, value: v} }

// FromEnum wraps a value obtained by enumeration.
func FromEnum(v uint64) Count { return Count{source: Enumerated, value: v} }

// None is the "no formula" sentinel.
func None() Count { return Count{source: NoFormula} }

// Provenance returns how the count was obtained.
func (c Count) Provenance() Provenance { return c.source }

// Value returns the cardinality; ok is false for the NoFormula sentinel.
func (c Count) Value() (v uint64, ok bool) {
	if c.source == NoFormula {
		return 0, false
	}

	return c.value, true
}

// String renders "value (provenance)" or "no formula".
func (c Count) String() string {
	if c.source == NoFormula {
		return c.source.String()
	}

	return fmt.Sprintf("%d (%s)", c.value, c.source)
}

// CountOnlyEnum counts simple cycles of length exactly length in
// dBG(order, sigma) by enumerating perfect Lyndon words.
//
// Errors: ErrInvalidParameter (wrapped).
func CountOnlyEnum(length, order int, sigma uint8, opts ...Option) (Count, error) {
	o := resolveOptions(opts)
	if err := validateParams(methodCountOnlyEnum, length, order, sigma); err != nil {
		return None(), err
	}

	lws, scanned, err := perfectWords(methodCountOnlyEnum, lyndon.FixedLength, length, order, sigma)
	if err != nil {
		return None(), err
	}
	c := FromEnum(uint64(len(lws)))

	o.Logger.Debug("counted cycles",
		"method", methodCountOnlyEnum, "length", length, "order", order, "sigma", sigma,
		"lyndon_words", scanned, "count", c.String())

	return c, nil
}

// CountWithFormula counts simple cycles of length exactly length in
// dBG(order, sigma), preferring closed forms:
//
//   - length ≤ order+1   → Lyndon word count (proved)
//   - length == order+2  → Lyndon count − φ(k+2)·C(σ,2) (proved)
//   - length == order+3  → Lyndon count − [ψ(k+3)(σ−1)σ²/2 − σ(σ−1)] (conjectured, order ≥ 2)
//   - length == σ^order  → de Bruijn sequence count (proved)
//
// Any other regime falls back to CountOnlyEnum, or returns None() when
// onlyFormula is set. Branches are tried in that order.
//
// Errors: ErrInvalidParameter, formula.ErrOverflow (wrapped).
func CountWithFormula(length, order int, sigma uint8, onlyFormula bool, opts ...Option) (Count, error) {
	o := resolveOptions(opts)
	if err := validateParams(methodCountFormula, length, order, sigma); err != nil {
		return None(), err
	}

	c, err := countByFormula(length, order, uint64(sigma))
	if err != nil {
		return None(), fmt.Errorf("cycles: %s(length=%d, order=%d, sigma=%d): %w",
			methodCountFormula, length, order, sigma, err)
	}
	if c.source == NoFormula && !onlyFormula {
		return CountOnlyEnum(length, order, sigma, opts...)
	}

	o.Logger.Debug("counted cycles",
		"method", methodCountFormula, "length", length, "order", order, "sigma", sigma,
		"count", c.String())

	return c, nil
}

// countByFormula is the regime dispatch; each closed form is only reached
// inside its documented range. A correction term larger than the Lyndon count
// means the regime does not apply, and the next branch is tried.
func countByFormula(length, order int, sigma uint64) (Count, error) {
	switch {
	case length <= order+1:
		lw, err := formula.LyndonWords(length, sigma)
		if err != nil {
			return None(), err
		}

		return Proved(lw), nil

	case length == order+2:
		v, ok, err := lyndonMinus(length, sigma, func() (uint64, error) {
			return formula.NonPerfectPlusTwo(order, sigma)
		})
		if err != nil {
			return None(), err
		}
		if ok {
			return Proved(v), nil
		}

	case length == order+3 && order >= 2:
		v, ok, err := lyndonMinus(length, sigma, func() (uint64, error) {
			return formula.NonPerfectPlusThree(order, sigma)
		})
		if err != nil {
			return None(), err
		}
		if ok {
			return Conjectured(v), nil
		}
	}

	// σ^order that overflows cannot equal a length we could enumerate.
	if size, err := formula.Pow(sigma, uint64(order)); err == nil && uint64(length) == size {
		dbs, err := formula.DeBruijnSequences(order, sigma)
		if err != nil {
			return None(), err
		}

		return Proved(dbs), nil
	}

	return None(), nil
}

// lyndonMinus returns LyndonWords(length, sigma) minus the non-perfect count
// given by correction. ok is false when the correction exceeds the Lyndon count.
func lyndonMinus(length int, sigma uint64, correction func() (uint64, error)) (v uint64, ok bool, err error) {
	lw, err := formula.LyndonWords(length, sigma)
	if err != nil {
		return 0, false, err
	}
	np, err := correction()
	if err != nil {
		return 0, false, err
	}
	if np > lw {
		return 0, false, nil
	}

	return lw - np, true, nil
}
