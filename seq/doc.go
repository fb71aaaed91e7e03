// Package seq provides lazy, pull-based query combinators over generic
// sequences.
//
// A Sequence hands out a cursor with Start and produces elements one at a
// time with TryNext. Cursors are plain values owned by the caller, so chained
// combinators run without allocating per element and a query can be
// traversed again from the start at any time.
//
// # Building queries
//
//	squares := seq.Map(
//	    seq.Where(seq.MustRange(0, 100), func(n int) bool { return n%3 == 0 }),
//	    func(n int) int { return n * n },
//	)
//	for v := range seq.All(squares) {
//	    fmt.Println(v)
//	}
//
// Combinators: Select, Map, Where, DefaultIfEmpty.
// Terminal operations: First, FirstOrDefault, Aggregate, Fold, Count, Any,
// ToSlice, ForEach.
//
// # Ordering
//
// OrderBy, OrderByDescending and OrderByFunc materialize their source into a
// Buffer and sort an index permutation with package
// github.com/ajroetker/go-lazyseq/seq/contrib/sort. ThenBy and friends add
// tie-breaking keys. Orderings are stable.
//
// # Buffers
//
// Buffer is a growable indexed collection and a Sequence in its own right.
// BuildFrom drains any Sequence into a Buffer. Mutating a Buffer while one of
// its traversals is in progress makes that traversal panic with ErrModified.
//
// # Select and early termination
//
// The selector passed to Select reports whether it produced a value. When it
// does not, Select ends the traversal at that point instead of skipping the
// element. Map is the variant whose function always produces a value.
package seq
