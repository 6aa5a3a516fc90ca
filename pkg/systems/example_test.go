package systems_test

import (
	"fmt"

	"github.com/matzehuels/cosmos/pkg/systems"
)

func ExampleEnneagram_Advance() {
	e := systems.NewEnneagram([9]float64{1}, 0)
	e = e.Advance()
	fmt.Println(e.Stage, e.Value(1), e.Value(4), e.Mode())
	// Output: 1 0.5 0.5 expressive
}

func ExampleStepTriad() {
	fmt.Println(systems.StepTriad(2), systems.PhaseAngle(1))
	// Output: [2 6 10] 120
}
