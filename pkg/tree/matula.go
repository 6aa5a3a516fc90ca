package tree

import (
	"math"

	"github.com/matzehuels/cosmos/pkg/errors"
	"github.com/matzehuels/cosmos/pkg/primes"
)

// Codec converts between trees and Matula numbers using a prime oracle.
type Codec struct {
	oracle *primes.Oracle
}

// NewCodec returns a codec backed by o, or by the default oracle when o is nil.
func NewCodec(o *primes.Oracle) *Codec {
	if o == nil {
		o = primes.Default()
	}
	return &Codec{oracle: o}
}

var defaultCodec = NewCodec(nil)

// Encode returns the Matula number of t using the default oracle.
func Encode(t Tree) (int, error) { return defaultCodec.Encode(t) }

// Decode returns the tree coded by n using the default oracle.
func Decode(n int) (Tree, error) { return defaultCodec.Decode(n) }

// Encode returns the Matula number of t. Empty (and nil) encode to 1, Leaf
// and a childless Node to 2, and any other Node to the product of
// prime(Encode(child)) over its children.
//
// The only failure is OVERFLOW, returned when the code does not fit in an
// int; no result is ever truncated.
func (c *Codec) Encode(t Tree) (int, error) {
	switch t := t.(type) {
	case nil, Empty:
		return 1, nil
	case Leaf:
		return 2, nil
	case Node:
		if len(t.Children) == 0 {
			return 2, nil
		}
		code := 1
		for _, child := range t.Children {
			k, err := c.Encode(child)
			if err != nil {
				return 0, err
			}
			p, err := c.oracle.Nth(k)
			if err != nil {
				return 0, errors.Wrap(errors.ErrCodeInternal, err, "prime for child code %d", k)
			}
			if code > math.MaxInt/p {
				return 0, errors.New(errors.ErrCodeOverflow, "Matula number of %d-node tree exceeds %d", Size(t), math.MaxInt)
			}
			code *= p
		}
		return code, nil
	}
	return 0, errors.New(errors.ErrCodeInternal, "unknown tree variant %T", t)
}

// Decode returns the tree coded by n: 1 is Empty, 2 is Leaf, and any larger n
// is a Node with one child Decode(Index(p)) per prime factor p, repeated by
// multiplicity, in ascending order of p. It fails with INVALID_ARGUMENT when
// n < 1.
func (c *Codec) Decode(n int) (Tree, error) {
	if err := errors.RequirePositive("n", n); err != nil {
		return nil, err
	}
	switch n {
	case 1:
		return Empty{}, nil
	case 2:
		return Leaf{}, nil
	}

	factors, err := primes.Factorize(n)
	if err != nil {
		return nil, err
	}
	var children []Tree
	for _, f := range factors {
		idx, err := c.oracle.Index(f.Prime)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "index of factor %d", f.Prime)
		}
		child, err := c.Decode(idx)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
		for range f.Multiplicity - 1 {
			children = append(children, Clone(child))
		}
	}
	return Node{Children: children}, nil
}
