package dyck

import (
	"iter"
	"math/big"

	"github.com/matzehuels/cosmos/pkg/tree"
)

// Word is a balanced sequence of '(' and ')'.
type Word string

// Pairs returns the number of bracket pairs in w.
func (w Word) Pairs() int { return len(w) / 2 }

// Tree parses w as the children of an implicit root.
func (w Word) Tree() (tree.Tree, error) { return tree.FromBrackets(string(w)) }

// Enumerate returns every Dyck word with n pairs in OPEN-first backtracking
// order. The sequence is finite and restartable: each range over it starts
// again from the first word. n == 0 yields the empty word once; n < 0
// yields nothing.
func Enumerate(n int) iter.Seq[Word] {
	return func(yield func(Word) bool) {
		if n < 0 {
			return
		}
		buf := make([]byte, 0, 2*n)
		backtrack(buf, n, 0, 0, yield)
	}
}

// backtrack extends buf with an opening bracket while fewer than n are open
// and with a closing one while it would not close an unopened group. It
// returns false once yield asks to stop.
func backtrack(buf []byte, n, opened, closed int, yield func(Word) bool) bool {
	if len(buf) == 2*n {
		return yield(Word(buf))
	}
	if opened < n {
		if !backtrack(append(buf, '('), n, opened+1, closed, yield) {
			return false
		}
	}
	if closed < opened {
		if !backtrack(append(buf, ')'), n, opened, closed+1, yield) {
			return false
		}
	}
	return true
}

// All materializes Enumerate(n).
func All(n int) []Word {
	var out []Word
	if n >= 0 {
		out = make([]Word, 0, capHint(n))
	}
	for w := range Enumerate(n) {
		out = append(out, w)
	}
	return out
}

// First returns at most limit words of Enumerate(n); limit <= 0 means all.
func First(n, limit int) []Word {
	if limit <= 0 {
		return All(n)
	}
	out := make([]Word, 0, min(limit, capHint(n)))
	for w := range Enumerate(n) {
		out = append(out, w)
		if len(out) == limit {
			break
		}
	}
	return out
}

// capHint is the Catalan number when it is small enough to preallocate.
func capHint(n int) int {
	c := Catalan(n)
	if !c.IsInt64() || c.Int64() > 1<<16 {
		return 1 << 16
	}
	return int(c.Int64())
}

// Count walks Enumerate(n) and returns how many words it produced.
func Count(n int) int {
	c := 0
	for range Enumerate(n) {
		c++
	}
	return c
}

// Catalan returns C(2n, n) / (n+1) exactly. Catalan(n) is 0 for n < 0.
func Catalan(n int) *big.Int {
	if n < 0 {
		return new(big.Int)
	}
	c := new(big.Int).Binomial(int64(2*n), int64(n))
	return c.Quo(c, big.NewInt(int64(n+1)))
}

// Valid reports whether s is a Dyck word: only brackets, no prefix with
// more ')' than '(', and equal totals.
func Valid(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		default:
			return false
		}
	}
	return depth == 0
}
