package tree_test

import (
	"fmt"

	"github.com/matzehuels/cosmos/pkg/tree"
)

func ExampleDecode() {
	t, _ := tree.Decode(4)
	fmt.Println(t)

	n, _ := tree.Encode(t)
	fmt.Println(n)
	// Output:
	// Node[Empty Empty]
	// 4
}

func ExampleToBrackets() {
	for _, n := range []int{2, 3, 5, 7} {
		t, _ := tree.Decode(n)
		fmt.Printf("%d %s\n", n, tree.ToBrackets(t))
	}
	// Output:
	// 2 ()
	// 3 (())
	// 5 ((()))
	// 7 (())
}

func ExampleFromBrackets() {
	t, _ := tree.FromBrackets("()()")
	fmt.Println(t, tree.ToBrackets(t))
	// Output: Node[Leaf Leaf] (()())
}
