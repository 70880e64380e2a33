// Package interval provides Range, a possibly-empty closed interval [lo, hi]
// over a signed integer type.
//
// What:
//
//   - Extension by a point (Extended / Extend), the empty range is the identity.
//   - Containment, counting and lazy ascending or descending iteration.
//   - Union (adjacent ranges merge) and Intersect.
//   - Merge folds any number of ranges into disjoint ascending ranges.
//
// Why:
//
//   - Axis extents of a rectangular bounding box (see package coordinate).
//   - Coverage arithmetic in puzzles: "how many cells of row y are covered by
//     at least one sensor", "does one assignment fully contain the other".
//
// Complexity:
//
//   - Extended, Contains, Count, Union, Intersect: O(1).
//   - Merge: O(n log n) for n input ranges.
//
// All operations are total over empty and non-empty inputs; none of them
// panics on well-ordered input. Count panics if the size overflows int.
package interval
