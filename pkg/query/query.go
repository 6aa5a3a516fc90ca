// Package query runs catalog, partition and tree queries behind a result
// cache.
//
// The core packages compute everything in memory and never block. Some
// results are expensive to rebuild (the Dyck words of n pairs grow with the
// Catalan numbers), so the CLI and the HTTP server go through a [Runner],
// which serializes each result with go-json and stores it in a
// [cache.Cache]. A result read from the cache is indistinguishable from a
// freshly computed one.
package query

import (
	"math/big"

	"github.com/matzehuels/cosmos/pkg/dyck"
)

// Result kinds, used as cache hook key types and in log lines.
const (
	KindSnapshot   = "snapshot"
	KindPartitions = "partitions"
	KindTree       = "tree"
)

// Partitions holds the Dyck words with N pairs.
type Partitions struct {
	N     int         `json:"n" yaml:"n"`
	Limit int         `json:"limit,omitempty" yaml:"limit,omitempty"`
	Words []dyck.Word `json:"words" yaml:"words"`
	// Catalan is the total number of words with N pairs; it exceeds
	// len(Words) when Truncated.
	Catalan   *big.Int `json:"catalan" yaml:"catalan"`
	Truncated bool     `json:"truncated" yaml:"truncated"`
}

// Tree is the decoded form of a Matula number.
type Tree struct {
	Matula    int    `json:"matula" yaml:"matula"`
	Brackets  string `json:"brackets" yaml:"brackets"`
	Structure string `json:"structure" yaml:"structure"`
	Size      int    `json:"size" yaml:"size"`
	Depth     int    `json:"depth" yaml:"depth"`
	// Children lists the Matula numbers of the root's children in
	// ascending prime order.
	Children []int `json:"children" yaml:"children"`
}
