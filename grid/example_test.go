package grid_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/aoc/coordinate"
	"github.com/katalvlaran/aoc/grid"
)

// ExampleGrid_Ensure counts visits on a grid that grows as it is written.
func ExampleGrid_Ensure() {
	visits := grid.New[int, int, coordinate.Cell]()
	pos := coordinate.Cell{}
	for _, d := range []coordinate.Direction{coordinate.Right, coordinate.Right, coordinate.Down, coordinate.Left} {
		pos = pos.Project(d, 1)
		*visits.Ensure(pos)++
	}
	_ = visits.Render(os.Stdout, func(_ coordinate.Cell, t *int) string {
		if t == nil {
			return "."
		}
		return fmt.Sprint(*t)
	})
	fmt.Println(visits.Bounds())
	// Output:
	// 11
	// 11
	// h=[1..2] v=[0..1]
}
