package challenges

import (
	"github.com/katalvlaran/aoc/puzzle"
)

// All returns a registry of every day. It panics if two packages claim the
// same year and day.
func All() *puzzle.Registry {
	r, err := puzzle.NewRegistry(Days()...)
	if err != nil {
		panic(err)
	}
	return r
}
