package rooted

import (
	"testing"

	"github.com/matzehuels/cosmos/pkg/tree"
)

func TestCount(t *testing.T) {
	want := []int64{0, 1, 1, 2, 4, 9, 20, 48, 115, 286, 719, 1842}
	for n, w := range want {
		if got := Count(n); got.Int64() != w {
			t.Errorf("Count(%d) = %s, want %d", n, got, w)
		}
	}
	if got := Count(-4); got.Sign() != 0 {
		t.Errorf("Count(-4) = %s, want 0", got)
	}
}

func TestCountLarge(t *testing.T) {
	if got := Count(30).String(); got != "354426847597" {
		t.Errorf("Count(30) = %s, want 354426847597", got)
	}
}

func TestCountIsCopy(t *testing.T) {
	Count(6).SetInt64(0)
	if got := Count(6); got.Int64() != 20 {
		t.Errorf("Count(6) = %s after mutation", got)
	}
}

func TestSequence(t *testing.T) {
	if got := Sequence(0); got != nil {
		t.Errorf("Sequence(0) = %v", got)
	}
	seq := Sequence(5)
	want := []int64{1, 1, 2, 4, 9}
	for i, v := range seq {
		if v.Int64() != want[i] {
			t.Errorf("Sequence(5)[%d] = %s, want %d", i, v, want[i])
		}
	}
}

// Count(n) agrees with the number of distinct tree shapes among Matula
// codes whose decoded tree has n nodes and no empty children.
func TestCountMatchesDecodedShapes(t *testing.T) {
	sizes := make(map[int]int)
	// Codes up to 400 cover every tree with at most five nodes.
	for m := 2; m <= 400; m++ {
		tr, err := tree.Decode(m)
		if err != nil {
			t.Fatal(err)
		}
		if hasEmpty(tr) {
			continue
		}
		sizes[tree.Size(tr)]++
	}
	for n := 1; n <= 5; n++ {
		if int64(sizes[n]) != Count(n).Int64() {
			t.Errorf("%d decoded shapes with %d nodes, Count = %s", sizes[n], n, Count(n))
		}
	}
}

func hasEmpty(t tree.Tree) bool {
	switch v := t.(type) {
	case tree.Empty:
		return true
	case tree.Node:
		for _, c := range v.Children {
			if hasEmpty(c) {
				return true
			}
		}
	}
	return false
}

func TestTermsForNesting(t *testing.T) {
	want := map[int]int{1: 1, 2: 2, 3: 4, 4: 9, 5: 18}
	for depth, w := range want {
		got, ok := TermsForNesting(depth)
		if !ok || got != w {
			t.Errorf("TermsForNesting(%d) = %d, %v, want %d", depth, got, ok, w)
		}
	}
	for _, depth := range []int{0, 6, -1} {
		if _, ok := TermsForNesting(depth); ok {
			t.Errorf("TermsForNesting(%d) ok, want false", depth)
		}
	}
}
