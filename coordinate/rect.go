package coordinate

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/aoc/interval"
)

// RectangularRange is an axis-aligned bounding box over coordinates of type C.
// It holds one interval per axis in stored (not visual) terms; the
// orientation of C decides which end is the top, bottom, left or right.
// The zero value is the empty box.
type RectangularRange[U Unit, C Coordinate[U, C]] struct {
	horizontal interval.Range[U]
	vertical   interval.Range[U]
}

// EmptyRect returns the empty box.
func EmptyRect[U Unit, C Coordinate[U, C]]() RectangularRange[U, C] {
	return RectangularRange[U, C]{}
}

// NewRect builds a box from its two axis ranges. The box is empty if either
// range is empty.
func NewRect[U Unit, C Coordinate[U, C]](horizontal, vertical interval.Range[U]) RectangularRange[U, C] {
	if horizontal.IsEmpty() || vertical.IsEmpty() {
		return RectangularRange[U, C]{}
	}
	return RectangularRange[U, C]{horizontal: horizontal, vertical: vertical}
}

// Bounds folds a sequence of coordinates into its bounding box, starting
// from the empty box.
func Bounds[U Unit, C Coordinate[U, C]](points iter.Seq[C]) RectangularRange[U, C] {
	var r RectangularRange[U, C]
	for p := range points {
		r.Extend(p)
	}
	return r
}

// FromPoints returns the bounding box of the given coordinates.
func FromPoints[U Unit, C Coordinate[U, C]](points ...C) RectangularRange[U, C] {
	var r RectangularRange[U, C]
	for _, p := range points {
		r.Extend(p)
	}
	return r
}

// IsEmpty reports whether the box contains no coordinate.
func (r RectangularRange[U, C]) IsEmpty() bool {
	return r.horizontal.IsEmpty() || r.vertical.IsEmpty()
}

// Horizontal returns the stored range of horizontal values.
func (r RectangularRange[U, C]) Horizontal() interval.Range[U] { return r.horizontal }

// Vertical returns the stored range of vertical values.
func (r RectangularRange[U, C]) Vertical() interval.Range[U] { return r.vertical }

// Width is the number of distinct horizontal values.
func (r RectangularRange[U, C]) Width() int { return r.horizontal.Count() }

// Height is the number of distinct vertical values.
func (r RectangularRange[U, C]) Height() int { return r.vertical.Count() }

// Extended returns the smallest box containing r and p. The first point
// seeds a 1x1 box.
func (r RectangularRange[U, C]) Extended(p C) RectangularRange[U, C] {
	if r.IsEmpty() {
		return RectangularRange[U, C]{
			horizontal: interval.New(p.Horizontal(), p.Horizontal()),
			vertical:   interval.New(p.Vertical(), p.Vertical()),
		}
	}
	return RectangularRange[U, C]{
		horizontal: r.horizontal.Extended(p.Horizontal()),
		vertical:   r.vertical.Extended(p.Vertical()),
	}
}

// Extend grows r in place to include p.
func (r *RectangularRange[U, C]) Extend(p C) {
	*r = r.Extended(p)
}

// Contains reports whether p lies inside the box on both axes.
func (r RectangularRange[U, C]) Contains(p C) bool {
	return r.horizontal.Contains(p.Horizontal()) && r.vertical.Contains(p.Vertical())
}

// Left returns the leftmost horizontal value.
func (r RectangularRange[U, C]) Left() (U, bool) {
	if r.IsEmpty() {
		var zero U
		return zero, false
	}
	hx, _ := axes[U, C]()
	if hx == PositiveRight {
		return r.horizontal.Start()
	}
	return r.horizontal.End()
}

// Right returns the rightmost horizontal value.
func (r RectangularRange[U, C]) Right() (U, bool) {
	if r.IsEmpty() {
		var zero U
		return zero, false
	}
	hx, _ := axes[U, C]()
	if hx == PositiveRight {
		return r.horizontal.End()
	}
	return r.horizontal.Start()
}

// Top returns the topmost vertical value. For a downward-growing axis this
// is the smallest stored value.
func (r RectangularRange[U, C]) Top() (U, bool) {
	if r.IsEmpty() {
		var zero U
		return zero, false
	}
	_, vx := axes[U, C]()
	if vx == PositiveUp {
		return r.vertical.End()
	}
	return r.vertical.Start()
}

// Bottom returns the bottommost vertical value.
func (r RectangularRange[U, C]) Bottom() (U, bool) {
	if r.IsEmpty() {
		var zero U
		return zero, false
	}
	_, vx := axes[U, C]()
	if vx == PositiveUp {
		return r.vertical.Start()
	}
	return r.vertical.End()
}

func (r RectangularRange[U, C]) TopLeft() (C, bool)     { return r.corner(r.Left, r.Top) }
func (r RectangularRange[U, C]) TopRight() (C, bool)    { return r.corner(r.Right, r.Top) }
func (r RectangularRange[U, C]) BottomLeft() (C, bool)  { return r.corner(r.Left, r.Bottom) }
func (r RectangularRange[U, C]) BottomRight() (C, bool) { return r.corner(r.Right, r.Bottom) }

func (r RectangularRange[U, C]) corner(horizontal, vertical func() (U, bool)) (C, bool) {
	var zero C
	h, ok := horizontal()
	if !ok {
		return zero, false
	}
	v, _ := vertical()
	return zero.FromHorzVert(h, v), true
}

// Expand grows the box by distance in direction d by extending it to the
// matching corner projected outward. None, and any direction on an empty
// box, leave r unchanged.
func (r *RectangularRange[U, C]) Expand(d Direction, distance U) {
	var (
		from C
		ok   bool
	)
	switch d {
	case Up:
		from, ok = r.TopLeft()
	case Down:
		from, ok = r.BottomLeft()
	case Left:
		from, ok = r.TopLeft()
	case Right:
		from, ok = r.TopRight()
	}
	if ok {
		r.Extend(from.Project(d, distance))
	}
}

// EdgePositions yields every coordinate on the edge of the box facing d,
// in ascending stored order along that edge. It yields nothing for None or
// an empty box.
func (r RectangularRange[U, C]) EdgePositions(d Direction) iter.Seq[C] {
	return func(yield func(C) bool) {
		if r.IsEmpty() {
			return
		}
		var zero C
		switch d {
		case Up, Down:
			v, _ := r.Top()
			if d == Down {
				v, _ = r.Bottom()
			}
			for h := range r.horizontal.All() {
				if !yield(zero.FromHorzVert(h, v)) {
					return
				}
			}
		case Left, Right:
			h, _ := r.Left()
			if d == Right {
				h, _ = r.Right()
			}
			for v := range r.vertical.All() {
				if !yield(zero.FromHorzVert(h, v)) {
					return
				}
			}
		}
	}
}

// All yields every coordinate in the box: horizontal values in the outer
// loop, vertical values in the inner loop, both ascending.
func (r RectangularRange[U, C]) All() iter.Seq[C] {
	return func(yield func(C) bool) {
		if r.IsEmpty() {
			return
		}
		var zero C
		for h := range r.horizontal.All() {
			for v := range r.vertical.All() {
				if !yield(zero.FromHorzVert(h, v)) {
					return
				}
			}
		}
	}
}

// Columns yields the horizontal values from left to right.
func (r RectangularRange[U, C]) Columns() iter.Seq[U] {
	if hx, _ := axes[U, C](); hx == PositiveLeft {
		return r.horizontal.Backward()
	}
	return r.horizontal.All()
}

// Rows yields the vertical values from top to bottom.
func (r RectangularRange[U, C]) Rows() iter.Seq[U] {
	if _, vx := axes[U, C](); vx == PositiveUp {
		return r.vertical.Backward()
	}
	return r.vertical.All()
}

func (r RectangularRange[U, C]) String() string {
	return fmt.Sprintf("h=%v v=%v", r.horizontal, r.vertical)
}

func axes[U Unit, C Coordinate[U, C]]() (HorizontalAxis, VerticalAxis) {
	var zero C
	return zero.Axes()
}
