package systems

import (
	"strconv"

	"github.com/matzehuels/cosmos/pkg/errors"
)

// Polarities are the three service polarities of level 5, six services each.
var Polarities = [3]string{"D-T", "P-O", "S-M"}

const servicesPerPolarity = 6

// Vertex is a monadic thread of the tetrahedron.
type Vertex struct {
	ID     int     `json:"id" yaml:"id"`
	Value  float64 `json:"value" yaml:"value"`
	Thread int     `json:"thread" yaml:"thread"`
}

// Edge is a dyadic relationship between two vertices, From < To.
type Edge struct {
	From   int     `json:"from" yaml:"from"`
	To     int     `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Face is a triadic bundle: three vertices and the edges between them.
type Face struct {
	Vertices [3]int  `json:"vertices" yaml:"vertices"`
	Edges    [3]Edge `json:"edges" yaml:"edges"`
}

// Service is one of the 18 services of level 5.
type Service struct {
	Polarity string  `json:"polarity" yaml:"polarity"`
	Index    int     `json:"index" yaml:"index"`
	Weight   float64 `json:"weight" yaml:"weight"`
}

// Key returns the service name, e.g. "D-T_1".
func (s Service) Key() string { return s.Polarity + "_" + strconv.Itoa(s.Index) }

// Tetrahedron is the level 5 model: 4 vertices, 6 edges, 4 faces and 18
// services in the [[D-T]-[P-O]-[S-M]] pattern.
type Tetrahedron struct {
	Vertices [4]Vertex `json:"vertices" yaml:"vertices"`
	Edges    [6]Edge   `json:"edges" yaml:"edges"`
	Faces    [4]Face   `json:"faces" yaml:"faces"`
	Services []Service `json:"services" yaml:"services"`
}

// NewTetrahedron returns the balanced tetrahedron: vertex values 1/4,
// edge weights 1/6, service weights 1/18. Face i is the face opposite
// vertex i.
func NewTetrahedron() Tetrahedron {
	var t Tetrahedron
	for i := range t.Vertices {
		t.Vertices[i] = Vertex{ID: i, Value: 0.25, Thread: i}
	}
	k := 0
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			t.Edges[k] = Edge{From: i, To: j, Weight: 1.0 / 6}
			k++
		}
	}
	for excluded := range t.Faces {
		var f Face
		n := 0
		for v := 0; v < 4; v++ {
			if v != excluded {
				f.Vertices[n] = v
				n++
			}
		}
		n = 0
		for _, e := range t.Edges {
			if e.From != excluded && e.To != excluded {
				f.Edges[n] = e
				n++
			}
		}
		t.Faces[excluded] = f
	}
	t.Services = make([]Service, 0, len(Polarities)*servicesPerPolarity)
	for _, p := range Polarities {
		for i := 1; i <= servicesPerPolarity; i++ {
			t.Services = append(t.Services, Service{Polarity: p, Index: i, Weight: 1.0 / 18})
		}
	}
	return t
}

// Energy is the sum of the vertex values.
func (t Tetrahedron) Energy() float64 {
	var s float64
	for _, v := range t.Vertices {
		s += v.Value
	}
	return s
}

// Rotate cycles the three vertices other than axis one place, keeping the
// axis vertex fixed. The axis is a vertex ID, 0..3. Edges, faces and
// services are unchanged.
func (t Tetrahedron) Rotate(axis int) (Tetrahedron, error) {
	if err := errors.RequireNonNegative("axis", axis); err != nil {
		return t, err
	}
	if err := errors.RequireAtMost("axis", axis, 3); err != nil {
		return t, err
	}
	var slots []int
	for i, v := range t.Vertices {
		if v.ID != axis {
			slots = append(slots, i)
		}
	}
	rotated := t.Vertices
	for k, i := range slots {
		rotated[i] = t.Vertices[slots[(k+1)%len(slots)]]
	}
	t.Vertices = rotated
	t.Services = append([]Service(nil), t.Services...)
	return t, nil
}

// PhaseAngle returns the phase in degrees of one of the three concurrent
// streams. Streams are 120° (four steps) apart.
func PhaseAngle(stream int) int { return mod(stream*120, 360) }

// StepTriad returns the three steps of the 12-step cycle that occur
// together with step: {1,5,9}, {2,6,10}, {3,7,11} or {4,8,12}.
func StepTriad(step int) [3]int {
	base := mod(step-1, 4) + 1
	return [3]int{base, base + 4, base + 8}
}
