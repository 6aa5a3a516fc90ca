package catalog

import (
	"math/big"
	"slices"

	"github.com/matzehuels/cosmos/pkg/dyck"
	"github.com/matzehuels/cosmos/pkg/errors"
	"github.com/matzehuels/cosmos/pkg/nested"
	"github.com/matzehuels/cosmos/pkg/simplex"
	"github.com/matzehuels/cosmos/pkg/tree"
)

// MinLevel and MaxLevel bound the defined structural levels.
const (
	MinLevel = 0
	MaxLevel = len(systems) - 1
)

// System is the fixed record of one structural level.
type System struct {
	Level           int
	Name            string
	Terms           int
	Partitions      int
	Universal       int
	Particular      int
	SimplexDim      int
	SimplexName     string
	Concurrency     int
	ConcurrencyName string
	Matula          []int
	Properties      []string
}

func (s System) clone() System {
	s.Matula = slices.Clone(s.Matula)
	s.Properties = slices.Clone(s.Properties)
	return s
}

// Lookup returns the record for level. Levels outside MinLevel..MaxLevel
// fail with UNKNOWN_LEVEL.
func Lookup(level int) (System, error) {
	if level < MinLevel || level > MaxLevel {
		return System{}, errors.UnknownLevel(level)
	}
	return systems[level].clone(), nil
}

// All returns every record in level order.
func All() []System {
	out := make([]System, len(systems))
	for i, s := range systems {
		out[i] = s.clone()
	}
	return out
}

// PascalCoefficients returns Pascal row Level, or [1] for a negative level.
func (s System) PascalCoefficients() simplex.Row {
	return simplex.PascalRow(s.Level)
}

// SimplexFaces returns the face table of the level's simplex.
func (s System) SimplexFaces() simplex.FaceTable {
	return simplex.Faces(s.SimplexDim)
}

// NestedExpression returns the nested expression for the level.
func (s System) NestedExpression() nested.Expr {
	return nested.Build(s.Level)
}

// TopologicalSurfaces returns every Dyck word with Level pairs wrapped in
// braces, e.g. "{(())}". Levels <= 0 have the single surface "{}".
func (s System) TopologicalSurfaces() []string {
	if s.Level <= 0 {
		return []string{"{}"}
	}
	var out []string
	for w := range dyck.Enumerate(s.Level) {
		out = append(out, "{"+string(w)+"}")
	}
	return out
}

// Catalan returns Catalan(Level-1), or 1 for levels <= 0.
func (s System) Catalan() *big.Int {
	if s.Level <= 0 {
		return big.NewInt(1)
	}
	return dyck.Catalan(s.Level - 1)
}

// Trees decodes each Matula code of the level into bracket text.
func (s System) Trees() ([]string, error) {
	out := make([]string, len(s.Matula))
	for i, m := range s.Matula {
		t, err := tree.Decode(m)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "level %d code %d", s.Level, m)
		}
		out[i] = tree.ToBrackets(t)
	}
	return out, nil
}
