// Package rooted counts unlabeled rooted trees (OEIS A000081) and maps
// nesting depth to term counts for the structural levels.
package rooted

import (
	"math/big"

	"github.com/matzehuels/cosmos/pkg/cache"
)

var counts = cache.NewMemo[int, *big.Int]()

// Count returns the number of unlabeled rooted trees with n nodes. It is 0
// for n <= 0. Values come from the Euler transform recurrence
//
//	a(n+1) = 1/n * sum_{k=1..n} (sum_{d|k} d*a(d)) * a(n-k+1)
//
// with a(1) = 1, and are memoized for the life of the process.
func Count(n int) *big.Int {
	if n <= 0 {
		return new(big.Int)
	}
	v, _ := counts.Do(n, compute)
	return new(big.Int).Set(v)
}

// Sequence returns Count(1) through Count(n).
func Sequence(n int) []*big.Int {
	if n <= 0 {
		return nil
	}
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = Count(i + 1)
	}
	return out
}

func compute(n int) (*big.Int, error) {
	a := make([]*big.Int, n+1)
	a[0] = new(big.Int)
	a[1] = big.NewInt(1)
	for m := 2; m <= n; m++ {
		if v, ok := counts.Get(m); ok {
			a[m] = v
		}
	}

	// s[k] = sum over divisors d of k of d*a(d)
	s := make([]*big.Int, n)
	divisorSum := func(k int) *big.Int {
		if s[k] != nil {
			return s[k]
		}
		sum, term := new(big.Int), new(big.Int)
		for d := 1; d <= k; d++ {
			if k%d == 0 {
				sum.Add(sum, term.Mul(big.NewInt(int64(d)), a[d]))
			}
		}
		s[k] = sum
		return sum
	}

	for m := 1; m < n; m++ {
		if a[m+1] != nil {
			continue
		}
		sum, term := new(big.Int), new(big.Int)
		for k := 1; k <= m; k++ {
			sum.Add(sum, term.Mul(divisorSum(k), a[m-k+1]))
		}
		a[m+1] = sum.Quo(sum, big.NewInt(int64(m)))
		counts.Put(m+1, a[m+1])
	}
	return a[n], nil
}

// nestingTerms relates nesting depth to the number of terms of the
// structural levels. Depths 1 through 4 follow A000081 shifted by one;
// depth 5 is 18, not A000081(6) = 20.
var nestingTerms = map[int]int{1: 1, 2: 2, 3: 4, 4: 9, 5: 18}

// TermsForNesting returns the term count for a nesting depth, or false for
// depths outside 1..5.
func TermsForNesting(depth int) (int, bool) {
	t, ok := nestingTerms[depth]
	return t, ok
}
