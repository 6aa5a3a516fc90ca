package catalog_test

import (
	"fmt"

	"github.com/matzehuels/cosmos/pkg/catalog"
)

func ExampleAnalyze() {
	snap, err := catalog.Analyze(4)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(snap.Name)
	fmt.Println(snap.PascalRow, snap.PascalSum)
	fmt.Println(snap.SurfaceCount, "surfaces, catalan", snap.Catalan)
	// Output:
	// Tetrahedron (Creative Process)
	// [1 4 6 4 1] 16
	// 14 surfaces, catalan 5
}

func ExampleLookup() {
	_, err := catalog.Lookup(9)
	fmt.Println(err)
	// Output: UNKNOWN_LEVEL: no structural level 9
}
