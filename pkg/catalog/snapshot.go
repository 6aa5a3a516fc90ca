package catalog

import (
	"math/big"
	"slices"

	"github.com/matzehuels/cosmos/pkg/nested"
	"github.com/matzehuels/cosmos/pkg/simplex"
)

// Snapshot is the complete analysis of one level. It owns all of its data;
// nothing in it aliases the catalog.
type Snapshot struct {
	Level            int             `json:"system" yaml:"system"`
	Name             string          `json:"name" yaml:"name"`
	Terms            int             `json:"terms" yaml:"terms"`
	Partitions       int             `json:"partitions" yaml:"partitions"`
	Universal        int             `json:"universal" yaml:"universal"`
	Particular       int             `json:"particular" yaml:"particular"`
	PascalRow        []*big.Int      `json:"pascal_row" yaml:"pascal_row"`
	PascalSum        *big.Int        `json:"pascal_sum" yaml:"pascal_sum"`
	Simplex          SimplexInfo     `json:"simplex" yaml:"simplex"`
	Concurrency      ConcurrencyInfo `json:"concurrency" yaml:"concurrency"`
	MatulaNumbers    []int           `json:"matula_numbers" yaml:"matula_numbers"`
	Trees            []string        `json:"trees" yaml:"trees"`
	NestedTuple      string          `json:"nested_tuple" yaml:"nested_tuple"`
	NestedExpression string          `json:"nested_expression" yaml:"nested_expression"`
	Catalan          *big.Int        `json:"catalan_number" yaml:"catalan_number"`
	SurfaceCount     int             `json:"surface_count" yaml:"surface_count"`
	Surfaces         []string        `json:"surfaces" yaml:"surfaces"`
	Properties       []string        `json:"properties" yaml:"properties"`
}

// SimplexInfo describes the simplex of a level.
type SimplexInfo struct {
	Dimension int               `json:"dimension" yaml:"dimension"`
	Name      string            `json:"name" yaml:"name"`
	Elements  simplex.FaceTable `json:"elements" yaml:"elements"`
}

// ConcurrencyInfo describes the concurrency of a level.
type ConcurrencyInfo struct {
	Level int    `json:"level" yaml:"level"`
	Name  string `json:"name" yaml:"name"`
}

// Analyze assembles the snapshot for level. It fails with UNKNOWN_LEVEL for
// levels outside MinLevel..MaxLevel.
func Analyze(level int) (Snapshot, error) {
	sys, err := Lookup(level)
	if err != nil {
		return Snapshot{}, err
	}
	return sys.Analyze()
}

// Analyze assembles the snapshot for s.
func (s System) Analyze() (Snapshot, error) {
	trees, err := s.Trees()
	if err != nil {
		return Snapshot{}, err
	}
	row := s.PascalCoefficients()
	expr := s.NestedExpression()
	surfaces := s.TopologicalSurfaces()
	return Snapshot{
		Level:      s.Level,
		Name:       s.Name,
		Terms:      s.Terms,
		Partitions: s.Partitions,
		Universal:  s.Universal,
		Particular: s.Particular,
		PascalRow:  row,
		PascalSum:  row.Sum(),
		Simplex: SimplexInfo{
			Dimension: s.SimplexDim,
			Name:      s.SimplexName,
			Elements:  s.SimplexFaces(),
		},
		Concurrency: ConcurrencyInfo{
			Level: s.Concurrency,
			Name:  s.ConcurrencyName,
		},
		MatulaNumbers:    slices.Clone(s.Matula),
		Trees:            trees,
		NestedTuple:      expr.String(),
		NestedExpression: nested.Render(expr),
		Catalan:          s.Catalan(),
		SurfaceCount:     len(surfaces),
		Surfaces:         surfaces,
		Properties:       slices.Clone(s.Properties),
	}, nil
}
