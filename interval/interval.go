package interval

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"slices"

	"fortio.org/safecast"
	"golang.org/x/exp/constraints"
)

// Range is a closed interval [start, end] over T, or the empty range.
// The zero value is the empty range. Two ranges compare equal with == iff
// they cover the same integers.
type Range[T constraints.Signed] struct {
	start, end T
	ok         bool
}

// Empty returns the empty range. It contains nothing and is the identity
// element for Extended.
func Empty[T constraints.Signed]() Range[T] {
	return Range[T]{}
}

// New returns the range [lo, hi]. The caller guarantees lo <= hi.
func New[T constraints.Signed](lo, hi T) Range[T] {
	return Range[T]{start: lo, end: hi, ok: true}
}

// IsEmpty reports whether r contains no values.
func (r Range[T]) IsEmpty() bool { return !r.ok }

// Start returns the lower bound; ok is false for the empty range.
func (r Range[T]) Start() (T, bool) { return r.start, r.ok }

// End returns the upper bound; ok is false for the empty range.
func (r Range[T]) End() (T, bool) { return r.end, r.ok }

// Extended returns the smallest range containing both r and p.
// Extending the empty range yields [p, p].
func (r Range[T]) Extended(p T) Range[T] {
	switch {
	case !r.ok:
		return New(p, p)
	case p < r.start:
		return New(p, r.end)
	case p > r.end:
		return New(r.start, p)
	default:
		return r
	}
}

// Extend grows r in place to include p.
func (r *Range[T]) Extend(p T) {
	*r = r.Extended(p)
}

// Contains reports whether p lies within r. Always false for the empty range.
func (r Range[T]) Contains(p T) bool {
	return r.ok && r.start <= p && p <= r.end
}

// Count returns the number of integers in r, 0 for the empty range.
// It panics if the count does not fit in an int.
func (r Range[T]) Count() int {
	if !r.ok {
		return 0
	}
	lo, err := safecast.Conv[int](r.start)
	if err != nil {
		panic(fmt.Sprintf("interval: start of %v: %v", r, err))
	}
	hi, err := safecast.Conv[int](r.end)
	if err != nil {
		panic(fmt.Sprintf("interval: end of %v: %v", r, err))
	}
	n := hi - lo
	if n < 0 || n == math.MaxInt {
		panic(fmt.Sprintf("interval: size of %v overflows int", r))
	}
	return n + 1
}

// All yields every value of r in ascending order.
// The sequence is finite and may be ranged over any number of times.
func (r Range[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !r.ok {
			return
		}
		for v := r.start; ; v++ {
			if !yield(v) || v == r.end {
				return
			}
		}
	}
}

// Backward yields every value of r in descending order.
func (r Range[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !r.ok {
			return
		}
		for v := r.end; ; v-- {
			if !yield(v) || v == r.start {
				return
			}
		}
	}
}

// Union returns the minimal ascending list of disjoint ranges covering r and
// other. Overlapping ranges, and ranges where one ends immediately before the
// other starts, collapse into a single range. The result is empty only when
// both inputs are empty.
func (r Range[T]) Union(other Range[T]) []Range[T] {
	switch {
	case !r.ok && !other.ok:
		return nil
	case !other.ok:
		return []Range[T]{r}
	case !r.ok:
		return []Range[T]{other}
	}
	first, second := r, other
	if other.start < r.start {
		first, second = other, r
	}
	if touches(first, second) {
		return []Range[T]{New(first.start, max(first.end, second.end))}
	}
	return []Range[T]{first, second}
}

// Intersect returns the overlap of r and other, or the empty range when they
// share no value or either is empty.
func (r Range[T]) Intersect(other Range[T]) Range[T] {
	if !r.ok || !other.ok {
		return Empty[T]()
	}
	lo, hi := max(r.start, other.start), min(r.end, other.end)
	if lo > hi {
		return Empty[T]()
	}
	return New(lo, hi)
}

// ContainsRange reports whether every value of other lies in r.
// The empty range is contained in every range.
func (r Range[T]) ContainsRange(other Range[T]) bool {
	if !other.ok {
		return true
	}
	return r.Contains(other.start) && r.Contains(other.end)
}

// String renders r as "[lo..hi]", or "[]" when empty.
func (r Range[T]) String() string {
	if !r.ok {
		return "[]"
	}
	return fmt.Sprintf("[%d..%d]", r.start, r.end)
}

// Merge folds ranges into disjoint, ascending ranges, applying the same
// adjacency rule as Union. Empty inputs are ignored.
func Merge[T constraints.Signed](ranges ...Range[T]) []Range[T] {
	sorted := make([]Range[T], 0, len(ranges))
	for _, r := range ranges {
		if r.ok {
			sorted = append(sorted, r)
		}
	}
	slices.SortFunc(sorted, func(a, b Range[T]) int {
		return cmp.Compare(a.start, b.start)
	})

	var out []Range[T]
	for _, r := range sorted {
		if n := len(out); n > 0 && touches(out[n-1], r) {
			out[n-1] = New(out[n-1].start, max(out[n-1].end, r.end))
			continue
		}
		out = append(out, r)
	}
	return out
}

// touches reports whether second overlaps first or begins right after it.
// first.start <= second.start must hold.
func touches[T constraints.Signed](first, second Range[T]) bool {
	return second.start <= first.end || second.start-1 == first.end
}
