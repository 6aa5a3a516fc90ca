package dyck

import (
	"math/big"
	"slices"
	"testing"

	"github.com/matzehuels/cosmos/pkg/tree"
)

func TestEnumerateTwo(t *testing.T) {
	got := All(2)
	want := []Word{"(())", "()()"}
	if !slices.Equal(got, want) {
		t.Errorf("All(2) = %v, want %v", got, want)
	}
	if Catalan(2).Int64() != 2 {
		t.Errorf("Catalan(2) = %v, want 2", Catalan(2))
	}
}

func TestEnumerateThreeOrder(t *testing.T) {
	got := All(3)
	want := []Word{"((()))", "(()())", "(())()", "()(())", "()()()"}
	if !slices.Equal(got, want) {
		t.Errorf("All(3) = %v, want %v", got, want)
	}
}

func TestEnumerateEdgeCases(t *testing.T) {
	if got := All(0); !slices.Equal(got, []Word{""}) {
		t.Errorf("All(0) = %q, want one empty word", got)
	}
	if got := All(-1); len(got) != 0 {
		t.Errorf("All(-1) = %q, want none", got)
	}
}

func TestEnumerateMatchesCatalan(t *testing.T) {
	for n := 0; n <= 12; n++ {
		words := All(n)
		if want := Catalan(n).Int64(); int64(len(words)) != want {
			t.Fatalf("len(All(%d)) = %d, want Catalan %d", n, len(words), want)
		}

		seen := make(map[Word]bool, len(words))
		for i, w := range words {
			if len(w) != 2*n {
				t.Fatalf("n=%d: %q has length %d", n, w, len(w))
			}
			if !Valid(string(w)) {
				t.Fatalf("n=%d: %q is not a Dyck word", n, w)
			}
			if seen[w] {
				t.Fatalf("n=%d: %q produced twice", n, w)
			}
			seen[w] = true
			if i > 0 && words[i-1] >= w {
				t.Fatalf("n=%d: %q follows %q, not lexicographic", n, w, words[i-1])
			}
		}
	}
}

func TestEnumerateRestartable(t *testing.T) {
	seq := Enumerate(5)
	var first, second []Word
	for w := range seq {
		first = append(first, w)
	}
	for w := range seq {
		second = append(second, w)
	}
	if !slices.Equal(first, second) {
		t.Error("ranging twice over the same sequence should yield the same words")
	}
}

func TestEnumerateEarlyStop(t *testing.T) {
	var got []Word
	for w := range Enumerate(10) {
		got = append(got, w)
		if len(got) == 3 {
			break
		}
	}
	want := []Word{"(((((((((())))))))))", "((((((((()()))))))))", "((((((((())())))))))"}
	if !slices.Equal(got, want) {
		t.Errorf("first three words of Enumerate(10) = %v", got)
	}
}

func TestFirst(t *testing.T) {
	if got := First(4, 2); !slices.Equal(got, []Word{"(((())))", "((()()))"}) {
		t.Errorf("First(4, 2) = %v", got)
	}
	if got := First(3, 0); len(got) != 5 {
		t.Errorf("First(3, 0) returned %d words, want 5", len(got))
	}
	if got := First(2, 100); len(got) != 2 {
		t.Errorf("First(2, 100) returned %d words, want 2", len(got))
	}
}

func TestCount(t *testing.T) {
	want := []int{1, 1, 2, 5, 14, 42, 132, 429, 1430}
	for n, c := range want {
		if got := Count(n); got != c {
			t.Errorf("Count(%d) = %d, want %d", n, got, c)
		}
	}
}

func TestCatalanExact(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{-1, "0"},
		{0, "1"},
		{1, "1"},
		{10, "16796"},
		{35, "3116285494907301262"},
		{40, "2622127042276492108820"}, // exceeds int64
	}

	for _, tt := range tests {
		want, _ := new(big.Int).SetString(tt.want, 10)
		if got := Catalan(tt.n); got.Cmp(want) != 0 {
			t.Errorf("Catalan(%d) = %v, want %v", tt.n, got, want)
		}
	}
}

func TestCatalanRecurrence(t *testing.T) {
	// C(n+1) = sum_{i=0..n} C(i) C(n-i)
	for n := 0; n < 30; n++ {
		sum := new(big.Int)
		for i := 0; i <= n; i++ {
			sum.Add(sum, new(big.Int).Mul(Catalan(i), Catalan(n-i)))
		}
		if sum.Cmp(Catalan(n+1)) != 0 {
			t.Fatalf("recurrence fails at n=%d", n)
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"", true},
		{"()", true},
		{"(()())", true},
		{")(", false},
		{"(()", false},
		{"())", false},
		{"(a)", false},
	}

	for _, tt := range tests {
		if got := Valid(tt.s); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestWordTree(t *testing.T) {
	for _, w := range All(4) {
		tr, err := w.Tree()
		if err != nil {
			t.Fatalf("%q.Tree() error: %v", w, err)
		}
		if w.Pairs() != 4 {
			t.Errorf("%q.Pairs() = %d", w, w.Pairs())
		}
		if got := tree.Size(tr); got != 5 {
			t.Errorf("%q.Tree() has %d nodes, want 5", w, got)
		}
	}
}
