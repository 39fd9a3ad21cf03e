package formula

import "fmt"

// LyndonWords returns the number of Lyndon words of length l over an alphabet
// of size sigma: (1/l) Σ_{d | l} μ(d) σ^{l/d}.
//
// Errors: ErrDomain when l < 1 or sigma < 1, ErrOverflow when σ^l does not fit.
func LyndonWords(l int, sigma uint64) (uint64, error) {
	if l < 1 || sigma < 1 {
		return 0, fmt.Errorf("formula: LyndonWords(l=%d, sigma=%d): %w", l, sigma, ErrDomain)
	}

	// Accumulate positive and negative Möbius terms apart to stay unsigned.
	var plus, minus uint64
	for _, d := range Divisors(uint64(l)) {
		mu := Mobius(d)
		if mu == 0 {
			continue
		}
		p, err := Pow(sigma, uint64(l)/d)
		if err != nil {
			return 0, fmt.Errorf("formula: LyndonWords(l=%d, sigma=%d): %w", l, sigma, err)
		}
		if mu > 0 {
			if plus+p < plus {
				return 0, fmt.Errorf("formula: LyndonWords(l=%d, sigma=%d): %w", l, sigma, ErrOverflow)
			}
			plus += p
		} else {
			minus += p
		}
	}

	return (plus - minus) / uint64(l), nil
}

// DeBruijnSequences returns the number of de Bruijn sequences of order k over
// sigma letters, ((σ−1)!)^{σ^{k−1}} · σ^{σ^{k−1}−k}, which is also the number
// of simple cycles of length σ^k in dBG(k, σ).
func DeBruijnSequences(k int, sigma uint64) (uint64, error) {
	if k < 1 || sigma < 2 {
		return 0, fmt.Errorf("formula: DeBruijnSequences(k=%d, sigma=%d): %w", k, sigma, ErrDomain)
	}
	wrap := func(err error) error {
		return fmt.Errorf("formula: DeBruijnSequences(k=%d, sigma=%d): %w", k, sigma, err)
	}

	e, err := Pow(sigma, uint64(k-1))
	if err != nil {
		return 0, wrap(err)
	}
	f, err := Factorial(sigma - 1)
	if err != nil {
		return 0, wrap(err)
	}
	a, err := Pow(f, e)
	if err != nil {
		return 0, wrap(err)
	}
	// σ^{k−1} ≥ k whenever σ ≥ 2.
	b, err := Pow(sigma, e-uint64(k))
	if err != nil {
		return 0, wrap(err)
	}
	out, err := mul(a, b)
	if err != nil {
		return 0, wrap(err)
	}

	return out, nil
}

// NonPerfectPlusTwo counts the non-perfect Lyndon words of length k+2 for
// window k: φ(k+2)·C(σ, 2). Status: proved.
func NonPerfectPlusTwo(k int, sigma uint64) (uint64, error) {
	if k < 1 || sigma < 2 {
		return 0, fmt.Errorf("formula: NonPerfectPlusTwo(k=%d, sigma=%d): %w", k, sigma, ErrDomain)
	}
	c, err := Binomial(sigma, 2)
	if err != nil {
		return 0, err
	}
	out, err := mul(Totient(uint64(k)+2), c)
	if err != nil {
		return 0, fmt.Errorf("formula: NonPerfectPlusTwo(k=%d, sigma=%d): %w", k, sigma, err)
	}

	return out, nil
}

// NonPerfectPlusThree counts the non-perfect Lyndon words of length k+3 for
// window k: ψ(k+3)·(σ−1)·σ²/2 − σ(σ−1). Status: conjectured.
func NonPerfectPlusThree(k int, sigma uint64) (uint64, error) {
	if k < 1 || sigma < 2 {
		return 0, fmt.Errorf("formula: NonPerfectPlusThree(k=%d, sigma=%d): %w", k, sigma, ErrDomain)
	}
	wrap := func(err error) error {
		return fmt.Errorf("formula: NonPerfectPlusThree(k=%d, sigma=%d): %w", k, sigma, err)
	}

	t, err := mul(Psi(uint64(k)+3), sigma-1)
	if err != nil {
		return 0, wrap(err)
	}
	if t, err = mul(t, sigma); err != nil {
		return 0, wrap(err)
	}
	if t, err = mul(t, sigma); err != nil {
		return 0, wrap(err)
	}
	t /= 2

	// ψ(n) ≥ 2 for n ≥ 4, so t ≥ (σ−1)σ² ≥ σ(σ−1).
	return t - sigma*(sigma-1), nil
}
