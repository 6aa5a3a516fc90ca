// Package primes answers the three prime queries the tree code is built on:
// primality, the k-th prime, and the position of a prime in the sequence.
//
// All three are pure functions. An [Oracle] memoizes them so that repeated
// queries for the same argument return identical results, which the Matula
// round trip in package tree depends on. The package-level functions share
// one process-wide oracle.
//
//	primes.IsPrime(7)   // true
//	primes.Nth(5)       // 11
//	primes.Index(11)    // 5
//
// Both lookups are 1-indexed: Nth(1) == 2 and Index(2) == 1.
package primes
