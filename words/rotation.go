package words

// Rotate returns a new word holding the left rotation of w by i positions,
// i.e. w[i:] followed by w[:i]. i is taken modulo len(w).
// Time Complexity: O(n).
func Rotate(w Word, i int) Word {
	n := len(w)
	if n == 0 {
		return Word{}
	}
	i %= n
	if i < 0 {
		i += n
	}
	out := make(Word, 0, n)
	out = append(out, w[i:]...)
	out = append(out, w[:i]...)

	return out
}

// MinimalRotationIndex implements Booth's algorithm and returns the smallest
// index k such that Rotate(w, k) is the lexicographically minimal rotation.
// Algorithm overview:
// 1. Duplicate the sequence (doubled) to length 2n.
// 2. Maintain an array f of failure links initialized to -1.
// 3. Track candidate k = 0; for j from 1 to 2n-1, adjust k based on comparisons.
// Time Complexity: O(n).
func MinimalRotationIndex(w Word) int {
	n := len(w)
	if n == 0 {
		return 0
	}
	doubled := make(Word, 0, 2*n)
	doubled = append(doubled, w...)
	doubled = append(doubled, w...)

	f := make([]int, 2*n) // failure link array
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1] // failure link lookup
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1 // smaller rotation starts earlier
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] { // mismatch with i == -1
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1 // extend match length
		}
	}

	return k % n
}

// MinimalRotation returns the lexicographically minimal rotation of w as a new word.
func MinimalRotation(w Word) Word {
	return Rotate(w, MinimalRotationIndex(w))
}

// IsPrimitive reports whether w is not a power u^m of a shorter word u (m ≥ 2).
// Time Complexity: O(n·d(n)), d(n) = number of divisors of n.
func IsPrimitive(w Word) bool {
	n := len(w)
	if n == 0 {
		return false
	}
	for p := 1; p < n; p++ {
		if n%p != 0 {
			continue
		}
		periodic := true
		for i := p; i < n; i++ {
			if w[i] != w[i-p] {
				periodic = false
				break
			}
		}
		if periodic {
			return false
		}
	}

	return true
}

// IsLyndon reports whether w is strictly smaller than each of its proper rotations.
// Equivalently, w is primitive and is its own minimal rotation.
func IsLyndon(w Word) bool {
	return len(w) > 0 && MinimalRotationIndex(w) == 0 && IsPrimitive(w)
}
