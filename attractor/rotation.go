package attractor

import "cmp"

// MinimalRotation returns the lexicographically minimal rotation of s as a new slice.
// s is never modified. Time Complexity: O(n).
func MinimalRotation[T cmp.Ordered](s []T) []T {
	k := MinimalRotationOffset(s)
	out := make([]T, len(s))
	for i := range out {
		out[i] = s[(k+i)%len(s)]
	}

	return out
}

// MinimalRotationOffset implements Booth's algorithm and returns the start
// index of the lexicographically minimal rotation of s (0 for empty s).
// Algorithm overview:
//  1. Conceptually double the sequence to length 2n.
//  2. Maintain an array f of failure links initialized to -1.
//  3. Track candidate k = 0; for j from 1 to 2n-1, adjust k based on comparisons.
//  4. k is the start of the minimal rotation.
func MinimalRotationOffset[T cmp.Ordered](s []T) int {
	n := len(s)
	if n < 2 {
		return 0
	}
	at := func(i int) T { return s[i%n] } // view of the doubled sequence, no copy
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && at(j) != at(k+i+1) {
			if at(j) < at(k+i+1) {
				k = j - i - 1
			}
			i = f[i]
		}
		if at(j) != at(k+i+1) { // i == -1 here
			if at(j) < at(k) {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	return k % n
}

// Compare lexicographically compares two sequences; a shorter prefix sorts first.
func Compare[T cmp.Ordered](a, b []T) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}
