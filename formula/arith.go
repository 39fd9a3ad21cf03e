package formula

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrOverflow indicates a result that does not fit in uint64.
	ErrOverflow = errors.New("formula: uint64 overflow")

	// ErrDomain indicates an argument outside the formula's documented range.
	ErrDomain = errors.New("formula: argument out of domain")
)

// mul returns a·b or ErrOverflow.
func mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrOverflow
	}

	return lo, nil
}

// Pow returns base^exp with overflow checking (square-and-multiply).
func Pow(base, exp uint64) (uint64, error) {
	result := uint64(1)
	var err error
	for exp > 0 {
		if exp&1 == 1 {
			if result, err = mul(result, base); err != nil {
				return 0, err
			}
		}
		exp >>= 1
		if exp > 0 {
			if base, err = mul(base, base); err != nil {
				return 0, err
			}
		}
	}

	return result, nil
}

// Factorial returns n!.
func Factorial(n uint64) (uint64, error) {
	result := uint64(1)
	var err error
	for i := uint64(2); i <= n; i++ {
		if result, err = mul(result, i); err != nil {
			return 0, fmt.Errorf("formula: Factorial(%d): %w", n, err)
		}
	}

	return result, nil
}

// primeFactors returns the prime factorization of n as (prime, exponent) pairs
// in increasing prime order. n ≤ 1 has no factors.
func primeFactors(n uint64) [][2]uint64 {
	var out [][2]uint64
	for p := uint64(2); p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		e := uint64(0)
		for n%p == 0 {
			n /= p
			e++
		}
		out = append(out, [2]uint64{p, e})
	}
	if n > 1 {
		out = append(out, [2]uint64{n, 1})
	}

	return out
}

// Mobius evaluates μ(n): 1 for n = 1, 0 when a squared prime divides n,
// (−1)^r when n is a product of r distinct primes. μ(0) is reported as 0.
func Mobius(n uint64) int {
	if n == 0 {
		return 0
	}
	sign := 1
	for _, pe := range primeFactors(n) {
		if pe[1] > 1 {
			return 0
		}
		sign = -sign
	}

	return sign
}

// Totient evaluates Euler's φ(n), the count of 1 ≤ i ≤ n coprime to n. φ(0) = 0.
func Totient(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	result := n
	for _, pe := range primeFactors(n) {
		result = result / pe[0] * (pe[0] - 1)
	}

	return result
}

// Psi is the auxiliary function of the +3 correction term:
// 3φ(n)/2 when 4 | n, 2φ(n) when n ≡ 2 (mod 4), φ(n) otherwise.
func Psi(n uint64) uint64 {
	switch n % 4 {
	case 0:
		return 3 * Totient(n) / 2
	case 2:
		return 2 * Totient(n)
	default:
		return Totient(n)
	}
}

// Binomial returns C(n, r); r > n yields 0.
func Binomial(n, r uint64) (uint64, error) {
	if r > n {
		return 0, nil
	}
	if r > n-r {
		r = n - r
	}
	result := uint64(1)
	for i := uint64(1); i <= r; i++ {
		// result·(n−r+i) is divisible by i at every step.
		next, err := mul(result, n-r+i)
		if err != nil {
			return 0, fmt.Errorf("formula: Binomial(%d,%d): %w", n, r, err)
		}
		result = next / i
	}

	return result, nil
}

// Divisors returns every positive divisor of n in increasing order,
// including 1 and n. Divisors(0) is empty.
func Divisors(n uint64) []uint64 {
	if n == 0 {
		return nil
	}
	var small, large []uint64
	for d := uint64(1); d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		small = append(small, d)
		if d != n/d {
			large = append(large, n/d)
		}
	}
	for i := len(large) - 1; i >= 0; i-- {
		small = append(small, large[i])
	}

	return small
}
