// Package formula gathers the closed-form counts that let the cycles package
// skip enumeration in tractable regimes, together with the small
// number-theoretic helpers they need.
//
// What:
//
//   - Arithmetic: Factorial, Mobius, Totient, Psi, Binomial, Divisors, Pow.
//   - LyndonWords(l, σ):          number of Lyndon words of length l (necklace formula).
//   - DeBruijnSequences(k, σ):    number of de Bruijn sequences of order k,
//     i.e. Hamiltonian cycles of dBG(k, σ).
//   - NonPerfectPlusTwo(k, σ):    non-perfect Lyndon words of length k+2 (proved).
//   - NonPerfectPlusThree(k, σ):  non-perfect Lyndon words of length k+3 (conjectured).
//
// All results are uint64. Multiplications and powers are checked; an overflow
// returns ErrOverflow and a negative intermediate returns ErrDomain. Callers
// are expected to stay inside each formula's documented regime; the counting
// dispatch in package cycles is that guard.
package formula
