// Package dyck enumerates Dyck words, the balanced bracket sequences that
// index unlabeled ordered tree shapes.
//
// A Dyck word with n pairs describes the children of a root with n
// non-root edges. [Enumerate] yields every such word by depth-first
// backtracking that tries an opening bracket before a closing one, so the
// order is lexicographic with '(' < ')':
//
//	for w := range dyck.Enumerate(3) {
//	    fmt.Println(w) // ((())) (()()) (())() ()(()) ()()()
//	}
//
// The number of words is the n-th Catalan number, computed independently by
// [Catalan] in exact arithmetic. Output size grows exponentially in n;
// callers that need bounded latency must cap n themselves.
package dyck
