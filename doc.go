// Package suffixtree builds a suffix tree over a byte string in linear
// time using McCreight's online construction algorithm, and exposes the
// resulting tree for read-only traversal and exact substring search.
//
// Build constructs the tree once; afterwards the tree and every node in
// it are immutable. Multiple goroutines may traverse the same tree
// concurrently without coordination, but a single Tree must never be
// built concurrently with itself.
package suffixtree
