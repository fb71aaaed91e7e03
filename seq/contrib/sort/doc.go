// Package sort orders elements by a chain of keys without moving them.
//
// The engine works on an index permutation: given n elements reachable
// through the Indexed interface, it returns the positions 0..n-1 arranged so
// that the elements they refer to are in order. The elements themselves are
// never copied or swapped.
//
// # Key chains
//
// A Chain lists one or more levels. Each level extracts a key from an
// element and compares keys, optionally in reverse. Two positions are
// compared level by level; a level is consulted only when all earlier levels
// tie. When every level ties, the lower original position comes first, so
// every ordering produced by this package is stable.
//
//	byAge := sort.By(func(p Person) int { return p.Age })
//	chain := sort.Then(byAge, func(p Person) string { return p.Name }, strings.Compare, false)
//	perm := chain.Sort(people)
//
// # Algorithms
//
// All operations share the comparison routine and therefore agree with each
// other:
//   - Sort: introsort (median-of-three or ninther pivot, insertion sort for
//     short ranges, heapsort past 2*log2(n) levels of recursion)
//   - PartialSort: like Sort, but partitions that cannot contain any of the
//     requested ranks are dropped instead of sorted; O(n + k log k) on average
//   - Select: iterative partition narrowing onto a single rank; O(n) on average
//   - Min: a linear scan for rank 0
//
// # Configuration
//
// The length at or below which ranges are insertion sorted defaults to 16 and
// may be overridden with the LAZYSEQ_SORT_CUTOFF environment variable.
package sort
