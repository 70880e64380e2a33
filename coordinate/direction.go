package coordinate

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnknownDirection is returned by ParseDirection for unrecognized input.
var ErrUnknownDirection = errors.New("coordinate: unknown direction")

// Direction is one of the four cardinal directions or None.
// None is the zero value and projects to an unchanged coordinate.
type Direction int

const (
	// None is the neutral direction.
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Cardinals lists the four non-neutral directions.
var Cardinals = [4]Direction{Up, Down, Left, Right}

// Opposite returns the reverse direction; None stays None.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// Clockwise returns d rotated a quarter turn to the right.
func (d Direction) Clockwise() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return None
	}
}

// CounterClockwise returns d rotated a quarter turn to the left.
func (d Direction) CounterClockwise() Direction {
	return d.Clockwise().Opposite()
}

// Rune returns an arrow glyph: '^', 'v', '<', '>' or '.' for None.
func (d Direction) Rune() rune {
	switch d {
	case Up:
		return '^'
	case Down:
		return 'v'
	case Left:
		return '<'
	case Right:
		return '>'
	default:
		return '.'
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "None"
	}
}

// ParseDirection accepts "U", "D", "L", "R" or the full names, case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "up":
		return Up, nil
	case "d", "down":
		return Down, nil
	case "l", "left":
		return Left, nil
	case "r", "right":
		return Right, nil
	}
	return None, errors.Wrapf(ErrUnknownDirection, "%q", s)
}
