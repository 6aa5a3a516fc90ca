package catalog

import (
	"math/big"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/cosmos/pkg/dyck"
	"github.com/matzehuels/cosmos/pkg/errors"
	"github.com/matzehuels/cosmos/pkg/nested"
)

func TestLookup(t *testing.T) {
	for level := MinLevel; level <= MaxLevel; level++ {
		sys, err := Lookup(level)
		require.NoError(t, err)
		require.Equal(t, level, sys.Level)
		require.NotEmpty(t, sys.Name)
		require.NotEmpty(t, sys.Matula)
	}
}

func TestLookupUnknownLevel(t *testing.T) {
	for _, level := range []int{-1, 6, 100} {
		_, err := Lookup(level)
		require.Error(t, err)
		require.True(t, errors.Is(err, errors.ErrCodeUnknownLevel), "level %d: %v", level, err)
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	sys, err := Lookup(3)
	require.NoError(t, err)
	sys.Matula[0] = -1
	sys.Properties[0] = "changed"

	again, err := Lookup(3)
	require.NoError(t, err)
	require.Equal(t, []int{8, 6, 7, 5}, again.Matula)
	require.Equal(t, "Triangle", again.Properties[0])
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 6)
	for i, s := range all {
		require.Equal(t, i, s.Level)
	}
	all[0].Name = "changed"
	require.Equal(t, "Void (Hole)", All()[0].Name)
}

func TestConstants(t *testing.T) {
	tests := []struct {
		level           int
		name            string
		terms           int
		partitions      int
		simplexDim      int
		simplexName     string
		concurrencyName string
		matula          []int
	}{
		{0, "Void (Hole)", 1, 0, -1, "vo-id", "0-Sets (Category/Spin)", []int{1}},
		{1, "Monad (Whole)", 1, 1, 0, "mon-ad", "1-Nest (Degree/Point)", []int{2}},
		{2, "Diasect (Term)", 2, 2, 1, "dia-sect", "2-Vert (Metric/Line)", []int{4, 3}},
		{3, "Triagon (Relations)", 4, 3, 2, "tria-gon", "3-Edge (Triangle)", []int{8, 6, 7, 5}},
		{4, "Tetrahedron (Creative Process)", 9, 5, 3, "tetra-hedron", "4-Face (Tetrahedron)", []int{16, 12, 9, 14, 10, 19, 13, 17, 11}},
	}
	for _, tt := range tests {
		sys, err := Lookup(tt.level)
		require.NoError(t, err)
		require.Equal(t, tt.name, sys.Name)
		require.Equal(t, tt.terms, sys.Terms)
		require.Equal(t, tt.partitions, sys.Partitions)
		require.Equal(t, tt.simplexDim, sys.SimplexDim)
		require.Equal(t, tt.simplexName, sys.SimplexName)
		require.Equal(t, tt.concurrencyName, sys.ConcurrencyName)
		require.Equal(t, tt.matula, sys.Matula)
	}

	five, err := Lookup(5)
	require.NoError(t, err)
	require.Equal(t, 20, five.Terms)
	require.Equal(t, 7, five.Partitions)
	require.Len(t, five.Matula, 20)
}

func TestDerivedValues(t *testing.T) {
	for level := MinLevel; level <= MaxLevel; level++ {
		sys, err := Lookup(level)
		require.NoError(t, err)

		row := sys.PascalCoefficients()
		require.Len(t, row, level+1)
		require.Equal(t, 0, row.Sum().Cmp(new(big.Int).Lsh(big.NewInt(1), uint(level))))

		require.Equal(t, nested.Build(level), sys.NestedExpression())

		surfaces := sys.TopologicalSurfaces()
		if level == 0 {
			require.Equal(t, []string{"{}"}, surfaces)
			require.Equal(t, int64(1), sys.Catalan().Int64())
			continue
		}
		require.Len(t, surfaces, dyck.Count(level))
		require.Zero(t, dyck.Catalan(level-1).Cmp(sys.Catalan()))
	}
}

func TestSimplexFaces(t *testing.T) {
	void, _ := Lookup(0)
	require.Len(t, void.SimplexFaces(), 1)
	count, ok := void.SimplexFaces().Get("void")
	require.True(t, ok)
	require.Equal(t, int64(1), count.Int64())

	tri, _ := Lookup(3)
	faces := tri.SimplexFaces()
	require.Len(t, faces, 3)
	for _, name := range []string{"vertices", "edges"} {
		c, ok := faces.Get(name)
		require.True(t, ok)
		require.Equal(t, int64(3), c.Int64())
	}
}

func TestTopologicalSurfaces(t *testing.T) {
	sys, _ := Lookup(2)
	require.Equal(t, []string{"{(())}", "{()()}"}, sys.TopologicalSurfaces())
}

func TestTrees(t *testing.T) {
	tests := []struct {
		level int
		want  []string
	}{
		{0, []string{""}},
		{1, []string{"()"}},
		{2, []string{"()", "(())"}},
		{3, []string{"()", "(())", "(())", "((()))"}},
		{4, []string{"()", "(())", "(()())", "(())", "((()))", "(())", "((()))", "((()))", "(((())))"}},
	}
	for _, tt := range tests {
		sys, err := Lookup(tt.level)
		require.NoError(t, err)
		got, err := sys.Trees()
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "level %d", tt.level)
	}
}

func TestAnalyze(t *testing.T) {
	snap, err := Analyze(3)
	require.NoError(t, err)
	require.Equal(t, 3, snap.Level)
	require.Equal(t, "Triagon (Relations)", snap.Name)
	require.Equal(t, "1 3 3 1", rowString(snap.PascalRow))
	require.Equal(t, int64(8), snap.PascalSum.Int64())
	require.Equal(t, 2, snap.Simplex.Dimension)
	require.Equal(t, "tria-gon", snap.Simplex.Name)
	require.Len(t, snap.Simplex.Elements, 3)
	require.Equal(t, 2, snap.Concurrency.Level)
	require.Equal(t, "[3[[2[[1],[1]]],[2[[1],[1]]],[2[[1],[1]]]]]", snap.NestedTuple)
	require.Equal(t, "[[[1],[1]],[[1],[1]],[[1],[1]]]", snap.NestedExpression)
	require.Equal(t, int64(2), snap.Catalan.Int64())
	require.Equal(t, 5, snap.SurfaceCount)
	require.Len(t, snap.Surfaces, 5)
	require.Equal(t, []int{8, 6, 7, 5}, snap.MatulaNumbers)
}

func TestAnalyzeEveryLevel(t *testing.T) {
	for level := MinLevel; level <= MaxLevel; level++ {
		snap, err := Analyze(level)
		require.NoError(t, err)
		require.Equal(t, level, snap.Level)
		require.Len(t, snap.Trees, len(snap.MatulaNumbers))
	}
	_, err := Analyze(6)
	require.True(t, errors.Is(err, errors.ErrCodeUnknownLevel))
}

func TestAnalyzeDoesNotAlias(t *testing.T) {
	snap, err := Analyze(2)
	require.NoError(t, err)
	snap.MatulaNumbers[0] = 0
	snap.PascalRow[1].SetInt64(7)

	again, err := Analyze(2)
	require.NoError(t, err)
	require.Equal(t, []int{4, 3}, again.MatulaNumbers)
	require.Equal(t, "1 2 1", rowString(again.PascalRow))
}

func TestSnapshotJSON(t *testing.T) {
	snap, err := Analyze(2)
	require.NoError(t, err)

	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, float64(2), decoded["system"])
	require.Equal(t, "Diasect (Term)", decoded["name"])
	require.Equal(t, []any{float64(1), float64(2), float64(1)}, decoded["pascal_row"])
	require.Equal(t, float64(4), decoded["pascal_sum"])
	simplexInfo := decoded["simplex"].(map[string]any)
	require.Equal(t, "dia-sect", simplexInfo["name"])
}

func TestSnapshotYAML(t *testing.T) {
	snap, err := Analyze(1)
	require.NoError(t, err)

	data, err := yaml.Marshal(snap)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Equal(t, 1, decoded["system"])
	require.Equal(t, "Monad (Whole)", decoded["name"])
	require.Equal(t, "mon-ad", decoded["simplex"].(map[string]any)["name"])
}

func rowString(row []*big.Int) string {
	s := ""
	for i, v := range row {
		if i > 0 {
			s += " "
		}
		s += v.String()
	}
	return s
}
