package nested_test

import (
	"fmt"

	"github.com/matzehuels/cosmos/pkg/nested"
)

func ExampleRender() {
	for level := 1; level <= 3; level++ {
		fmt.Println(nested.Render(nested.Build(level)))
	}
	// Output:
	// [1]
	// [[1],[1]]
	// [[[1],[1]],[[1],[1]],[[1],[1]]]
}

func ExampleToArray() {
	fmt.Println(nested.ToArray(nested.Build(2)))
	// Output: [[1] [1]]
}
