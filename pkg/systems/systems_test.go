package systems

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/cosmos/pkg/errors"
)

const eps = 1e-12

func TestWholeness(t *testing.T) {
	w := NewWholeness()
	require.Equal(t, 1.0, w.Energy())
	require.Zero(t, w.InterfaceRatio(), "unbounded periphery")

	w.Periphery = 4
	require.InDelta(t, 0.25, w.InterfaceRatio(), eps)
}

func TestPerception(t *testing.T) {
	p := NewPerception(3, 2)
	require.InDelta(t, 0.6, p.Subjective, eps)
	require.InDelta(t, 0.4, p.Objective, eps)
	require.InDelta(t, 0.2, p.Polarity(), eps)
	require.InDelta(t, 0.24, p.Term(), eps)
	require.Equal(t, Subjective, p.Dominant())

	next := p.Transition(0.1)
	require.InDelta(t, 0.58, next.Subjective, eps)
	require.InDelta(t, 0.42, next.Objective, eps)
	require.InDelta(t, 1, next.Subjective+next.Objective, eps)

	balanced := p.Transition(0.5)
	require.InDelta(t, 0, balanced.Polarity(), eps)

	require.Equal(t, Objective, NewPerception(1, 3).Dominant())
	require.Equal(t, "objective", Objective.String())
}

func TestPerceptionZeroTotal(t *testing.T) {
	p := NewPerception(0, 0)
	require.Zero(t, p.Subjective)
	require.Zero(t, p.Objective)
}

func TestRelations(t *testing.T) {
	r := NewRelations([4]float64{3, 2, 3, 2})
	require.InDelta(t, 1, sum(r.Centers[:]), eps)

	want := map[Relation]float64{
		Discretion:  0.018,
		Means:       0.15,
		Goal:        0.06,
		Consequence: 0.012,
	}
	for rel, w := range want {
		require.InDelta(t, w, r.Term(rel), eps, rel.String())
	}
	require.Zero(t, r.Term(Relation(9)))
	require.Equal(t, "unknown", Relation(0).String())

	universal, particular := r.DyadicPairs()
	require.InDelta(t, 0.018, universal[0], eps)
	require.InDelta(t, 0.15, universal[1], eps)
	require.InDelta(t, 0.06, particular[0], eps)
	require.InDelta(t, 0.012, particular[1], eps)
}

func TestFlowRate(t *testing.T) {
	require.InDelta(t, 0.5, FlowRate(0.75, 0.25, 1), eps)
	require.InDelta(t, -1.0, FlowRate(0, 0.5, 2), eps)
}

func TestTransformationColumnsSumToOne(t *testing.T) {
	m := Transformation()
	for j := 0; j < 9; j++ {
		var col float64
		for i := 0; i < 9; i++ {
			col += m[i][j]
		}
		require.InDelta(t, 1, col, eps, "column %d", j)
	}
	for _, pos := range Mediating {
		require.Equal(t, 1.0, m[pos-1][pos-1], "position %d is fixed", pos)
	}
}

func TestEnneagramAdvance(t *testing.T) {
	var p [9]float64
	p[0] = 1
	e := NewEnneagram(p, 0)

	next := e.Advance()
	require.Equal(t, 1, next.Stage)
	require.InDelta(t, 0.5, next.Value(1), eps)
	require.InDelta(t, 0.5, next.Value(4), eps)
	require.InDelta(t, 1, next.Energy(), eps)
	require.InDelta(t, 1, TransformationEnergy(e, next), eps)

	u := UniformEnneagram()
	require.InDelta(t, 0, TransformationEnergy(u, u.Advance()), eps, "uniform state is fixed")
}

func TestEnneagramStageCycle(t *testing.T) {
	e := UniformEnneagram()
	var modes []string
	for range StagesPerCycle {
		modes = append(modes, e.Mode())
		e = e.Advance()
	}
	require.Equal(t, 0, e.Stage, "stage wraps after a full cycle")

	n := 0
	for _, m := range modes {
		if m == "expressive" {
			n++
		}
	}
	require.Equal(t, 7, n)
	require.Equal(t, "regenerative", modes[3])

	require.Equal(t, 11, NewEnneagram([9]float64{}, -1).Stage)
	require.True(t, math.IsNaN(e.Value(10)))
}

func TestEnneagramRotate(t *testing.T) {
	var p [9]float64
	p[0] = 1
	e := NewEnneagram(p, 3)

	r := e.Rotate(1)
	require.Equal(t, 1.0, r.Value(4))
	require.Equal(t, 3, r.Stage)

	require.Equal(t, 1.0, e.Rotate(-1).Value(9))
	require.Equal(t, e.Positions, e.Rotate(9).Positions)
	require.Equal(t, e.Rotate(2).Positions, e.Rotate(1).Rotate(1).Positions)
}

func TestTetrahedron(t *testing.T) {
	tet := NewTetrahedron()
	require.Len(t, tet.Vertices, 4)
	require.Len(t, tet.Edges, 6)
	require.Len(t, tet.Faces, 4)
	require.Len(t, tet.Services, 18)
	require.InDelta(t, 1, tet.Energy(), eps)

	for i, f := range tet.Faces {
		require.NotContains(t, f.Vertices[:], i, "face %d is opposite vertex %d", i, i)
		for _, e := range f.Edges {
			require.NotEqual(t, i, e.From)
			require.NotEqual(t, i, e.To)
		}
	}

	require.Equal(t, "D-T_1", tet.Services[0].Key())
	require.Equal(t, "S-M_6", tet.Services[17].Key())
	var total float64
	for _, s := range tet.Services {
		total += s.Weight
	}
	require.InDelta(t, 1, total, eps)
}

func TestTetrahedronRotate(t *testing.T) {
	tet := NewTetrahedron()
	r, err := tet.Rotate(0)
	require.NoError(t, err)

	ids := func(x Tetrahedron) []int {
		out := make([]int, len(x.Vertices))
		for i, v := range x.Vertices {
			out[i] = v.ID
		}
		return out
	}
	require.Equal(t, []int{0, 2, 3, 1}, ids(r))
	require.Equal(t, []int{0, 1, 2, 3}, ids(tet), "receiver is unchanged")

	r, _ = r.Rotate(0)
	r, _ = r.Rotate(0)
	require.Equal(t, ids(tet), ids(r), "three turns are the identity")

	r, err = tet.Rotate(2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 2, 0}, ids(r))

	for _, axis := range []int{-1, 4} {
		_, err := tet.Rotate(axis)
		require.True(t, errors.Is(err, errors.ErrCodeInvalidArgument), "axis %d", axis)
	}
}

func TestPhaseAngle(t *testing.T) {
	tests := map[int]int{0: 0, 1: 120, 2: 240, 3: 0, -1: 240}
	for stream, want := range tests {
		require.Equal(t, want, PhaseAngle(stream), "stream %d", stream)
	}
}

func TestStepTriad(t *testing.T) {
	tests := map[int][3]int{
		1:  {1, 5, 9},
		6:  {2, 6, 10},
		11: {3, 7, 11},
		12: {4, 8, 12},
		0:  {4, 8, 12},
	}
	for step, want := range tests {
		require.Equal(t, want, StepTriad(step), "step %d", step)
	}
}

func TestEvolve(t *testing.T) {
	for level := 1; level <= 5; level++ {
		s, err := Evolve(level, 3)
		require.NoError(t, err)
		require.Equal(t, level, s.Level)
		require.NotEmpty(t, s.Name)
		require.InDelta(t, 1, s.Energy, 1e-9, "level %d conserves energy", level)
	}

	s, err := Evolve(2, 1)
	require.NoError(t, err)
	require.InDelta(t, 0.58, s.Perception.Subjective, eps)
	require.Nil(t, s.Enneagram)

	s, err = Evolve(4, 13)
	require.NoError(t, err)
	require.Equal(t, 1, s.Enneagram.Stage)

	s, err = Evolve(5, 1)
	require.NoError(t, err)
	require.Equal(t, 2, s.Tetrahedron.Vertices[1].ID)
}

func TestEvolveErrors(t *testing.T) {
	tests := []struct {
		level, steps int
		code         errors.Code
	}{
		{0, 0, errors.ErrCodeInvalidArgument},
		{6, 0, errors.ErrCodeUnknownLevel},
		{-1, 0, errors.ErrCodeUnknownLevel},
		{3, -1, errors.ErrCodeInvalidArgument},
	}
	for _, tt := range tests {
		_, err := Evolve(tt.level, tt.steps)
		require.True(t, errors.Is(err, tt.code), "Evolve(%d, %d) = %v", tt.level, tt.steps, err)
	}
}
