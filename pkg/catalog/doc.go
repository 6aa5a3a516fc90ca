// Package catalog holds the six structural levels (0 through 5) and derives
// their counting structures on demand.
//
// Each [System] is constant data fixed at program start. Derived values
// (Pascal row, simplex faces, nested expression, bracket surfaces, Catalan
// number) are computed from the level each time they are requested and are
// never stored on the record:
//
//	sys, err := catalog.Lookup(3)
//	sys.PascalCoefficients()  // 1 3 3 1
//	sys.TopologicalSurfaces() // {((()))} {(()())} ...
//
// [Analyze] bundles a level's constants and derived values into a
// [Snapshot] that presentation code can serialize as JSON or YAML.
package catalog
