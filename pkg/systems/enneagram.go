package systems

import "math"

// StagesPerCycle is the length of the level 4 transformation cycle.
const StagesPerCycle = 12

// Positions of the six-pointed figure in flow order, and of the mediating
// triangle. Positions are numbered 1 through 9.
var (
	SixPointed = [6]int{1, 4, 2, 8, 5, 7}
	Mediating  = [3]int{3, 6, 9}
)

// rotationOrder is the flow order extended with the mediating triangle,
// used by Rotate.
var rotationOrder = [9]int{1, 4, 2, 8, 5, 7, 3, 6, 9}

// expressive marks the seven expressive stages of the cycle; the other
// five are regenerative.
var expressive = [StagesPerCycle]bool{0: true, 1: true, 2: true, 4: true, 5: true, 8: true, 9: true}

// Enneagram is the level 4 model: nine position values normalized to sum
// to 1 and a stage in the 12-stage cycle. Positions[i] holds position i+1.
type Enneagram struct {
	Positions [9]float64 `json:"positions" yaml:"positions"`
	Stage     int        `json:"stage" yaml:"stage"`
}

// NewEnneagram normalizes positions and reduces stage modulo the cycle
// length.
func NewEnneagram(positions [9]float64, stage int) Enneagram {
	normalize(positions[:])
	return Enneagram{Positions: positions, Stage: mod(stage, StagesPerCycle)}
}

// UniformEnneagram has every position at 1/9 and stage 0.
func UniformEnneagram() Enneagram {
	var p [9]float64
	for i := range p {
		p[i] = 1.0 / 9
	}
	return NewEnneagram(p, 0)
}

// Value returns the value at position pos (1..9), or NaN outside that
// range.
func (e Enneagram) Value(pos int) float64 {
	if pos < 1 || pos > 9 {
		return math.NaN()
	}
	return e.Positions[pos-1]
}

// Transformation returns the one-stage transition matrix. Each position of
// the six-pointed figure keeps half its value and passes half to the next
// position in flow order (1→4→2→8→5→7→1). The mediating triangle is left
// unchanged. Every column sums to 1.
func Transformation() [9][9]float64 {
	var t [9][9]float64
	for i := range t {
		t[i][i] = 1
	}
	for i, from := range SixPointed {
		to := SixPointed[(i+1)%len(SixPointed)]
		t[from-1][from-1] = 0.5
		t[to-1][from-1] = 0.5
	}
	return t
}

// Advance applies Transformation once and moves to the next stage.
func (e Enneagram) Advance() Enneagram {
	t := Transformation()
	var next [9]float64
	for i := range next {
		for j, v := range e.Positions {
			next[i] += t[i][j] * v
		}
	}
	return NewEnneagram(next, e.Stage+1)
}

// Expressive reports whether the current stage is expressive rather than
// regenerative.
func (e Enneagram) Expressive() bool { return expressive[mod(e.Stage, StagesPerCycle)] }

// Mode returns "expressive" or "regenerative" for the current stage.
func (e Enneagram) Mode() string {
	if e.Expressive() {
		return "expressive"
	}
	return "regenerative"
}

// Energy is the sum of the position values. Advance conserves it.
func (e Enneagram) Energy() float64 { return sum(e.Positions[:]) }

// Rotate moves each value steps places along 1→4→2→8→5→7→3→6→9, wrapping
// around. Negative steps rotate backwards. The stage is unchanged.
func (e Enneagram) Rotate(steps int) Enneagram {
	var next [9]float64
	for i, pos := range rotationOrder {
		next[rotationOrder[mod(i+steps, 9)]-1] = e.Positions[pos-1]
	}
	e.Positions = next
	return e
}

// TransformationEnergy is the total absolute change in position values
// between two states.
func TransformationEnergy(before, after Enneagram) float64 {
	var d float64
	for i := range before.Positions {
		d += math.Abs(after.Positions[i] - before.Positions[i])
	}
	return d
}
