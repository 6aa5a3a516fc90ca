package simplex

import (
	"math/big"
	"strings"

	"github.com/matzehuels/cosmos/pkg/cache"
)

// Row is one row of Pascal's triangle.
type Row []*big.Int

// Sum returns the sum of the row.
func (r Row) Sum() *big.Int {
	s := new(big.Int)
	for _, v := range r {
		s.Add(s, v)
	}
	return s
}

// Int64s returns the row as int64 values, or ok == false if any entry does
// not fit.
func (r Row) Int64s() (vals []int64, ok bool) {
	vals = make([]int64, len(r))
	for i, v := range r {
		if !v.IsInt64() {
			return nil, false
		}
		vals[i] = v.Int64()
	}
	return vals, true
}

// Strings returns the decimal form of every entry.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, v := range r {
		out[i] = v.String()
	}
	return out
}

// String formats the row space-separated, e.g. "1 4 6 4 1".
func (r Row) String() string {
	return strings.Join(r.Strings(), " ")
}

func (r Row) clone() Row {
	out := make(Row, len(r))
	for i, v := range r {
		out[i] = new(big.Int).Set(v)
	}
	return out
}

var rows = cache.NewMemo[int, Row]()

// PascalRow returns row n (0-indexed) of Pascal's triangle, built by the
// recurrence row[k] = prev[k-1] + prev[k] with 1 at both ends. Rows are
// memoized; the result is a copy the caller may keep or modify. For n < 0
// it returns the single-entry row [1].
func PascalRow(n int) Row {
	if n < 0 {
		n = 0
	}
	r, _ := rows.Do(n, pascalRow)
	return r.clone()
}

// pascalRow computes row n from the memoized row n-1. Rows below n that
// are missing are filled iteratively first so deep rows do not recurse
// n levels.
func pascalRow(n int) (Row, error) {
	if n == 0 {
		return Row{big.NewInt(1)}, nil
	}
	start := n - 1
	for start > 0 {
		if _, ok := rows.Get(start); ok {
			break
		}
		start--
	}
	for i := start; i < n-1; i++ {
		if _, err := rows.Do(i, pascalRow); err != nil {
			return nil, err
		}
	}
	prev, err := rows.Do(n-1, pascalRow)
	if err != nil {
		return nil, err
	}
	row := make(Row, n+1)
	row[0], row[n] = big.NewInt(1), big.NewInt(1)
	for k := 1; k < n; k++ {
		row[k] = new(big.Int).Add(prev[k-1], prev[k])
	}
	return row, nil
}

// Triangle returns rows 0..n.
func Triangle(n int) []Row {
	if n < 0 {
		return nil
	}
	out := make([]Row, n+1)
	for i := range out {
		out[i] = PascalRow(i)
	}
	return out
}

// Binomial returns C(n, k) exactly; it is 0 when k < 0 or k > n.
func Binomial(n, k int) *big.Int {
	if n < 0 || k < 0 || k > n {
		return new(big.Int)
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}
