package primes

import (
	"math"
	"sync"

	"github.com/matzehuels/cosmos/pkg/cache"
	"github.com/matzehuels/cosmos/pkg/errors"
)

// IsPrime reports whether n is prime. It never fails: every n < 2 is simply
// not prime. Even numbers other than 2 are rejected before trial division
// by odd divisors up to floor(sqrt(n)).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	limit := isqrt(n)
	for d := 3; d <= limit; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// isqrt returns floor(sqrt(n)) for n >= 0, correcting the float estimate so
// the result is exact for every int.
func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}

// Oracle memoizes prime lookups. It is safe for concurrent use.
type Oracle struct {
	nth   *cache.Memo[int, int]
	index *cache.Memo[int, int]

	mu     sync.Mutex
	primes []int // primes[i] is the (i+1)-th prime; grows on demand
}

// NewOracle returns an oracle with empty caches.
func NewOracle() *Oracle {
	return &Oracle{
		nth:   cache.NewMemo[int, int](),
		index: cache.NewMemo[int, int](),
	}
}

var defaultOracle = NewOracle()

// Default returns the process-wide oracle used by the package functions.
func Default() *Oracle { return defaultOracle }

// Nth returns the k-th prime (1-indexed) using the default oracle.
func Nth(k int) (int, error) { return defaultOracle.Nth(k) }

// Index returns the 1-indexed position of p using the default oracle.
func Index(p int) (int, error) { return defaultOracle.Index(p) }

// Nth returns the k-th prime, 1-indexed: Nth(1) == 2.
// It fails with INVALID_ARGUMENT when k < 1.
func (o *Oracle) Nth(k int) (int, error) {
	if err := errors.RequirePositive("k", k); err != nil {
		return 0, err
	}
	return o.nth.Do(k, o.computeNth)
}

// Index returns the 1-indexed position of p in the prime sequence:
// Index(2) == 1, Index(11) == 5. It fails with NOT_PRIME when p is not prime.
func (o *Oracle) Index(p int) (int, error) {
	if !IsPrime(p) {
		return 0, errors.NotPrime(p)
	}
	return o.index.Do(p, o.computeIndex)
}

// computeNth scans upward from the largest known prime until k primes are
// known.
func (o *Oracle) computeNth(k int) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.extendTo(func() bool { return len(o.primes) >= k })
	return o.primes[k-1], nil
}

// computeIndex counts the known primes <= p, extending the list first if p
// lies beyond it.
func (o *Oracle) computeIndex(p int) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.extendTo(func() bool { return len(o.primes) > 0 && o.primes[len(o.primes)-1] >= p })
	lo, hi := 0, len(o.primes)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if o.primes[mid] < p {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo + 1, nil
}

// extendTo appends primes until done reports true. Callers hold o.mu.
func (o *Oracle) extendTo(done func() bool) {
	n := 1
	if len(o.primes) > 0 {
		n = o.primes[len(o.primes)-1]
	}
	for !done() {
		n++
		if IsPrime(n) {
			o.primes = append(o.primes, n)
		}
	}
}

// Known returns how many primes the oracle has materialized so far.
func (o *Oracle) Known() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.primes)
}
