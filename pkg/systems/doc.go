// Package systems models the dynamics of structural levels 1 through 5.
//
// Each level has a small state model: a single center (Wholeness), two
// centers in polarity (Perception), four relation terms (Relations), the
// nine-position enneagram with its 12-stage cycle (Enneagram), and the
// tetrahedron of threads and services (Tetrahedron). [Evolve] builds the
// model for a level and runs it forward a number of steps.
//
// All values are float64 and normalized so that a level's energy is 1.
// The transitions conserve it.
package systems
