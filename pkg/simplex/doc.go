// Package simplex counts faces of simplices with Pascal's triangle.
//
// Row n of the triangle lists C(n, k) for k = 0..n and sums to 2^n. An
// n-simplex has C(n+1, k+1) faces of dimension k, so its face table is row
// n+1 without the leading 1 and sums to 2^(n+1) - 1:
//
//	simplex.PascalRow(4)  // [1 4 6 4 1]
//	simplex.Faces(2)  // vertices:3 edges:3 faces:1
//
// All counts are exact big integers. Rows are memoized for the life of the
// process; every call returns a fresh copy.
package simplex
