// Package pkg provides the core libraries of cosmos, a combinatorial
// encoding engine for finite rooted trees.
//
// # Overview
//
// A rooted tree has four interchangeable views in cosmos: a positive integer
// (its Matula number), balanced bracket text, a count in a binomial table,
// and a place in the six structural levels of the catalog. The pkg directory
// is organized around those views:
//
//  1. [primes] - Prime oracle (nth prime, prime index, factorization)
//  2. [tree] - Rooted trees, the Matula codec and bracket text
//  3. [dyck] - Dyck word enumeration and Catalan numbers
//  4. [simplex] - Pascal rows and simplex face tables
//  5. [nested] - The self-similar nested expression of a level
//  6. [rooted] - Counts of unlabeled rooted trees
//  7. [catalog] - The six structural levels and their snapshots
//  8. [systems] - State models and transitions of levels 1 through 5
//
// Supporting packages:
//
//   - [errors]: error codes shared by every package
//   - [cache]: in-process memo and the file/Redis result cache
//   - [query]: cached queries for the CLI and HTTP server
//   - [observability]: query, cache and HTTP hooks
//   - [buildinfo]: version information injected at build time
//
// # Architecture
//
// The typical data flow:
//
//	Matula number ←→ [tree] ←→ bracket text ←→ [dyck] words
//	                   ↑
//	               [primes]
//
//	level → [catalog] → [simplex] + [nested] + [dyck] + [tree] → Snapshot
//	                                    ↓
//	                            [query] → [cache]
//
// The core packages (primes through catalog) are pure: they never block,
// log or touch the network. Their only shared state is append-only memo
// tables, safe for concurrent use.
//
// # Quick Start
//
// Decode a Matula number and analyze a level:
//
//	import (
//	    "github.com/matzehuels/cosmos/pkg/catalog"
//	    "github.com/matzehuels/cosmos/pkg/tree"
//	)
//
//	t, _ := tree.Decode(12)
//	fmt.Println(tree.ToBrackets(t)) // (())
//
//	snap, _ := catalog.Analyze(4)
//	fmt.Println(snap.PascalRow, snap.SurfaceCount) // [1 4 6 4 1] 14
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/tree/...     # Specific package
//	go test -run Example ./... # Examples only
//
// [primes]: https://pkg.go.dev/github.com/matzehuels/cosmos/pkg/primes
// [tree]: https://pkg.go.dev/github.com/matzehuels/cosmos/pkg/tree
// [dyck]: https://pkg.go.dev/github.com/matzehuels/cosmos/pkg/dyck
// [simplex]: https://pkg.go.dev/github.com/matzehuels/cosmos/pkg/simplex
// [nested]: https://pkg.go.dev/github.com/matzehuels/cosmos/pkg/nested
// [rooted]: https://pkg.go.dev/github.com/matzehuels/cosmos/pkg/rooted
// [catalog]: https://pkg.go.dev/github.com/matzehuels/cosmos/pkg/catalog
// [systems]: https://pkg.go.dev/github.com/matzehuels/cosmos/pkg/systems
// [errors]: https://pkg.go.dev/github.com/matzehuels/cosmos/pkg/errors
// [cache]: https://pkg.go.dev/github.com/matzehuels/cosmos/pkg/cache
// [query]: https://pkg.go.dev/github.com/matzehuels/cosmos/pkg/query
// [observability]: https://pkg.go.dev/github.com/matzehuels/cosmos/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/cosmos/pkg/buildinfo
package pkg
