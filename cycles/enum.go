package cycles

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/dbgcycles/lyndon"
	"github.com/katalvlaran/dbgcycles/perfect"
	"github.com/katalvlaran/dbgcycles/words"
)

// perfectWords pulls the whole Lyndon sequence of the given mode and keeps the
// words that are perfect for window order. It returns the survivors in
// generation order and the number of Lyndon words scanned.
//
// FixedLength skips the filter when length ≤ order; BoundedLength relies on
// IsPerfectLyndon, which short-circuits words no longer than order.
func perfectWords(method string, mode lyndon.Mode, length, order int, sigma uint8) ([]words.Word, int, error) {
	g, err := lyndon.NewSmallest(length, sigma-1, mode)
	if err != nil {
		return nil, 0, fmt.Errorf("cycles: %s: %w", method, err)
	}

	var (
		kept    []words.Word
		scanned int
	)
	for w := range g.All() {
		scanned++

		var ok bool
		switch {
		case mode == lyndon.FixedLength && length <= order:
			ok = true
		case mode == lyndon.FixedLength:
			ok, err = perfect.IsPerfect(w, order)
		default:
			ok, err = perfect.IsPerfectLyndon(w, order)
		}
		if err != nil {
			return nil, scanned, fmt.Errorf("cycles: %s: word %v: %w", method, w, err)
		}
		if ok {
			kept = append(kept, w)
		}
	}

	return kept, scanned, nil
}

// EnumFixedLength returns every simple cycle of length exactly length in
// dBG(order, sigma), ordered by the lexicographic order of their Lyndon words.
//
// Errors: ErrInvalidParameter (wrapped).
func EnumFixedLength(length, order int, sigma uint8, opts ...Option) ([]words.Cycle, error) {
	o := resolveOptions(opts)
	if err := validateParams(methodEnumFixed, length, order, sigma); err != nil {
		return nil, err
	}

	lws, scanned, err := perfectWords(methodEnumFixed, lyndon.FixedLength, length, order, sigma)
	if err != nil {
		return nil, err
	}
	out := mapAll(lws, order)

	o.Logger.Debug("enumerated cycles",
		"method", methodEnumFixed, "length", length, "order", order, "sigma", sigma,
		"lyndon_words", scanned, "cycles", len(out))

	return out, nil
}

// EnumBoundedLength returns every simple cycle of length ≤ length in
// dBG(order, sigma). Cycles come in the interleaved lexicographic order of
// their Lyndon words, not grouped by length; call SortByLength to group them.
//
// Errors: ErrInvalidParameter (wrapped).
func EnumBoundedLength(length, order int, sigma uint8, opts ...Option) ([]words.Cycle, error) {
	o := resolveOptions(opts)
	if err := validateParams(methodEnumBounded, length, order, sigma); err != nil {
		return nil, err
	}

	lws, scanned, err := perfectWords(methodEnumBounded, lyndon.BoundedLength, length, order, sigma)
	if err != nil {
		return nil, err
	}
	out := mapAll(lws, order)

	o.Logger.Debug("enumerated cycles",
		"method", methodEnumBounded, "length", length, "order", order, "sigma", sigma,
		"lyndon_words", scanned, "cycles", len(out))

	return out, nil
}

// EnumAll returns every simple cycle of dBG(order, sigma), i.e.
// EnumBoundedLength(sigma^order, order, sigma).
//
// Errors: ErrInvalidParameter, ErrTooLarge (wrapped).
func EnumAll(order int, sigma uint8, opts ...Option) ([]words.Cycle, error) {
	if err := validateParams(methodEnumAll, 1, order, sigma); err != nil {
		return nil, err
	}
	bound, err := graphSize(methodEnumAll, order, sigma)
	if err != nil {
		return nil, err
	}

	return EnumBoundedLength(bound, order, sigma, opts...)
}

// SortByLength orders cycles by length, then node by node, in place.
func SortByLength(cs []words.Cycle) {
	slices.SortFunc(cs, words.CompareCycles)
}

func mapAll(lws []words.Word, order int) []words.Cycle {
	out := make([]words.Cycle, 0, len(lws))
	for _, w := range lws {
		out = append(out, MapWordToCycle(w, order))
	}

	return out
}
