package systems

import (
	"github.com/matzehuels/cosmos/pkg/catalog"
	"github.com/matzehuels/cosmos/pkg/errors"
)

// Starting values for the level 2 and 3 models.
var (
	initialPerception = [2]float64{0.6, 0.4}
	initialRelations  = [4]float64{0.3, 0.2, 0.3, 0.2}
)

// TransitionRate is the per-step rate used by Evolve for level 2.
const TransitionRate = 0.1

// State is a snapshot of one level's model. Exactly one of the model
// fields is set, matching Level.
type State struct {
	Level  int     `json:"level" yaml:"level"`
	Name   string  `json:"name" yaml:"name"`
	Steps  int     `json:"steps" yaml:"steps"`
	Energy float64 `json:"energy" yaml:"energy"`

	Wholeness   *Wholeness   `json:"wholeness,omitempty" yaml:"wholeness,omitempty"`
	Perception  *Perception  `json:"perception,omitempty" yaml:"perception,omitempty"`
	Relations   *Relations   `json:"relations,omitempty" yaml:"relations,omitempty"`
	Enneagram   *Enneagram   `json:"enneagram,omitempty" yaml:"enneagram,omitempty"`
	Tetrahedron *Tetrahedron `json:"tetrahedron,omitempty" yaml:"tetrahedron,omitempty"`
}

// Evolve builds the model for level (1..5) and runs it forward steps times:
//
//	1  wholeness, static
//	2  perception, Transition(TransitionRate) per step
//	3  relations, static
//	4  enneagram, Advance per step
//	5  tetrahedron, Rotate about vertex 0 per step
//
// Level 0 has no model and fails with INVALID_ARGUMENT; levels outside
// the catalog fail with UNKNOWN_LEVEL.
func Evolve(level, steps int) (State, error) {
	sys, err := catalog.Lookup(level)
	if err != nil {
		return State{}, err
	}
	if err := errors.RequireNonNegative("steps", steps); err != nil {
		return State{}, err
	}
	s := State{Level: level, Name: sys.Name, Steps: steps}

	switch level {
	case 1:
		w := NewWholeness()
		s.Wholeness, s.Energy = &w, w.Energy()
	case 2:
		p := NewPerception(initialPerception[0], initialPerception[1])
		for range steps {
			p = p.Transition(TransitionRate)
		}
		s.Perception, s.Energy = &p, p.Subjective+p.Objective
	case 3:
		r := NewRelations(initialRelations)
		s.Relations, s.Energy = &r, sum(r.Centers[:])
	case 4:
		e := UniformEnneagram()
		for range steps {
			e = e.Advance()
		}
		s.Enneagram, s.Energy = &e, e.Energy()
	case 5:
		t := NewTetrahedron()
		for range steps {
			if t, err = t.Rotate(0); err != nil {
				return State{}, err
			}
		}
		s.Tetrahedron, s.Energy = &t, t.Energy()
	default:
		return State{}, errors.InvalidArgument("level %d has no state model", level)
	}
	return s, nil
}
