// Package tree defines rooted trees and their two encodings: Matula numbers
// and bracket text.
//
// # Trees
//
// [Tree] is a closed sum type with three variants:
//
//   - [Empty]: no nodes
//   - [Leaf]: one node, no children
//   - [Node]: a root with one or more ordered children
//
// A childless root is always a [Leaf]; [NewNode] routes zero children there
// so Node{} never appears in values built by this package.
//
// # Matula numbers
//
// [Encode] and [Decode] implement the prime-factorization code:
//
//	Empty          -> 1
//	Leaf           -> 2
//	Node(c1..cm)   -> prime(code(c1)) * ... * prime(code(cm))
//
// where prime(k) is the k-th prime. Because multiplication commutes, the code
// ignores child order. Decode factors n and decodes the index of every prime
// factor, once per multiplicity, so Encode(Decode(n)) == n for every n >= 1.
//
// # Bracket text
//
// [ToBrackets] renders Empty as "", Leaf as "()" and a Node as its children
// wrapped in one pair of brackets. [FromBrackets] reads a Dyck word as the
// children of an implicit root, so ToBrackets(FromBrackets(w)) == "(" + w + ")".
// [ParseRooted] reads text that includes the root's own brackets.
//
// Bracket text is lossy: Empty children render as nothing, so Node(Empty,
// Empty) and Leaf both render as "()".
package tree
