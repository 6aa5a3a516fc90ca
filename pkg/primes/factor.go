package primes

import "github.com/matzehuels/cosmos/pkg/errors"

// Factor is a prime raised to a multiplicity.
type Factor struct {
	Prime        int
	Multiplicity int
}

// Factorize returns the prime factorization of n in ascending prime order.
// Factorize(1) is empty. It fails with INVALID_ARGUMENT when n < 1.
func Factorize(n int) ([]Factor, error) {
	if err := errors.RequirePositive("n", n); err != nil {
		return nil, err
	}
	var out []Factor
	for p := 2; n > 1; p++ {
		if p > n/p {
			// Remaining cofactor has no divisor <= sqrt, so it is prime.
			out = append(out, Factor{Prime: n, Multiplicity: 1})
			break
		}
		m := 0
		for n%p == 0 {
			n /= p
			m++
		}
		if m > 0 {
			out = append(out, Factor{Prime: p, Multiplicity: m})
		}
	}
	return out, nil
}
