package systems

// Wholeness is the level 1 model: a single center against an unbounded
// periphery.
type Wholeness struct {
	Center float64 `json:"center" yaml:"center"`
	// Periphery is the size of the boundary; 0 means unbounded.
	Periphery float64 `json:"periphery" yaml:"periphery"`
}

// NewWholeness returns the ground state: unit center, unbounded periphery.
func NewWholeness() Wholeness {
	return Wholeness{Center: 1}
}

// Energy is the center value; the ground state has energy 1.
func (w Wholeness) Energy() float64 { return w.Center }

// InterfaceRatio is Center/Periphery, or 0 when the periphery is unbounded.
func (w Wholeness) InterfaceRatio() float64 {
	if w.Periphery <= 0 {
		return 0
	}
	return w.Center / w.Periphery
}

// Mode names one side of the level 2 duality.
type Mode int

const (
	Subjective Mode = iota
	Objective
)

func (m Mode) String() string {
	if m == Objective {
		return "objective"
	}
	return "subjective"
}

// Perception is the level 2 model: a subjective and an objective center
// whose values sum to 1.
type Perception struct {
	Subjective float64 `json:"subjective" yaml:"subjective"`
	Objective  float64 `json:"objective" yaml:"objective"`
}

// NewPerception normalizes the two centers to sum to 1. A non-positive
// total is kept as given.
func NewPerception(subjective, objective float64) Perception {
	if total := subjective + objective; total > 0 {
		subjective /= total
		objective /= total
	}
	return Perception{Subjective: subjective, Objective: objective}
}

// Term is the product of the two centers.
func (p Perception) Term() float64 { return p.Subjective * p.Objective }

// Polarity is Subjective - Objective, in [-1, 1] for normalized centers.
func (p Perception) Polarity() float64 { return p.Subjective - p.Objective }

// Dominant reports the larger center. Ties go to Subjective.
func (p Perception) Dominant() Mode {
	if p.Objective > p.Subjective {
		return Objective
	}
	return Subjective
}

// Transition moves each center toward the other by rate times their
// difference. Rate 0.5 balances them in one step.
func (p Perception) Transition(rate float64) Perception {
	d := p.Objective - p.Subjective
	return NewPerception(p.Subjective+rate*d, p.Objective-rate*d)
}

// Relation is one of the four relation terms of level 3.
type Relation int

const (
	Discretion Relation = iota + 1
	Means
	Goal
	Consequence
)

var relationNames = [...]string{"", "discretion", "means", "goal", "consequence"}

func (r Relation) String() string {
	if r < Discretion || r > Consequence {
		return "unknown"
	}
	return relationNames[r]
}

// Relations is the level 3 model: four centers normalized to sum to 1.
type Relations struct {
	Centers [4]float64 `json:"centers" yaml:"centers"`
}

// NewRelations normalizes centers to sum to 1. A non-positive total is
// kept as given.
func NewRelations(centers [4]float64) Relations {
	normalize(centers[:])
	return Relations{Centers: centers}
}

// Term returns the value of relation r, or 0 for an unknown relation.
//
//	discretion  = c0*c1*c2
//	means       = (c0+c1)*c2
//	goal        = c0*c3
//	consequence = c1*c2*c3
func (s Relations) Term(r Relation) float64 {
	c := s.Centers
	switch r {
	case Discretion:
		return c[0] * c[1] * c[2]
	case Means:
		return (c[0] + c[1]) * c[2]
	case Goal:
		return c[0] * c[3]
	case Consequence:
		return c[1] * c[2] * c[3]
	}
	return 0
}

// Terms returns the four relation terms in Relation order.
func (s Relations) Terms() [4]float64 {
	return [4]float64{s.Term(Discretion), s.Term(Means), s.Term(Goal), s.Term(Consequence)}
}

// DyadicPairs returns the universal pair (discretion, means) and the
// particular pair (goal, consequence).
func (s Relations) DyadicPairs() (universal, particular [2]float64) {
	t := s.Terms()
	return [2]float64{t[0], t[1]}, [2]float64{t[2], t[3]}
}

// FlowRate is the flow between two centers: conductance times the
// potential difference.
func FlowRate(source, sink, conductance float64) float64 {
	return conductance * (source - sink)
}

func normalize(v []float64) {
	total := sum(v)
	if total <= 0 {
		return
	}
	for i := range v {
		v[i] /= total
	}
}

func sum(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}
	return s
}

// mod returns the non-negative remainder of a divided by n.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
