package search_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/coordinate"
	"github.com/katalvlaran/aoc/grid"
	"github.com/katalvlaran/aoc/search"
)

// adjacency turns an undirected edge list into a neighbor function.
func adjacency(edges ...[2]string) func(string) iter.Seq[string] {
	adj := map[string][]string{}
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	return func(n string) iter.Seq[string] {
		return slices.Values(adj[n])
	}
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := search.BFS[string]("A", nil)
	require.ErrorIs(t, err, search.ErrNilNeighbors)

	_, err = search.BFS("A", adjacency(), search.WithMaxDepth[string](-1))
	require.ErrorIs(t, err, search.ErrOptionViolation)
}

// TestBFS_SingleNode covers a start with no neighbors.
func TestBFS_SingleNode(t *testing.T) {
	res, err := search.BFS("A", adjacency())
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, res.Order)
	require.Equal(t, map[string]int{"A": 0}, res.Depth)
	path, err := res.PathTo("A")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, path)
}

// TestBFS_CycleDepths covers a simple cycle and checks depths.
func TestBFS_CycleDepths(t *testing.T) {
	// A–B–C–D–A undirected cycle
	nb := adjacency([2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "A"})
	res, err := search.BFS("A", nb)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	require.Equal(t, 0, res.Depth["A"])
	require.Equal(t, 1, res.Depth["B"])
	require.Equal(t, 1, res.Depth["D"])
	require.Equal(t, 2, res.Depth["C"])

	path, err := res.PathTo("C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, path)

	_, err = res.PathTo("Z")
	require.ErrorIs(t, err, search.ErrNoPath)
}

// TestBFS_MaxDepth verifies positive and zero (no limit) depths.
func TestBFS_MaxDepth(t *testing.T) {
	nb := adjacency([2]string{"A", "B"}, [2]string{"B", "C"})
	res, err := search.BFS("A", nb, search.WithMaxDepth[string](1))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Order)

	res, err = search.BFS("A", nb, search.WithMaxDepth[string](0))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, res.Order)
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	nb := adjacency([2]string{"A", "B"}, [2]string{"B", "C"})
	res, err := search.BFS("A", nb, search.WithFilterNeighbor(func(curr, next string) bool {
		return !(curr == "B" && next == "C")
	}))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Order)
}

// TestBFS_Hooks checks hook order and error propagation.
func TestBFS_Hooks(t *testing.T) {
	nb := adjacency([2]string{"A", "B"}, [2]string{"A", "C"})
	var enq []string
	res, err := search.BFS("A", nb, search.WithOnEnqueue(func(n string, _ int) { enq = append(enq, n) }))
	require.NoError(t, err)
	require.Equal(t, res.Order, enq)

	stop := errors.New("stop")
	res, err = search.BFS("A", nb, search.WithOnVisit(func(n string, _ int) error {
		if n == "B" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	require.Equal(t, []string{"A", "B"}, res.Order, "partial result is returned")
}

// TestBFS_Grid runs the search over grid cells with a wall.
func TestBFS_Grid(t *testing.T) {
	rows := [][]byte{
		[]byte("S.#"),
		[]byte(".##"),
		[]byte("..E"),
	}
	g, err := grid.FromRows[byte, int, coordinate.RightDown](rows)
	require.NoError(t, err)

	open := func(c coordinate.Cell) iter.Seq[coordinate.Cell] {
		return func(yield func(coordinate.Cell) bool) {
			for n := range g.Neighbors(c, grid.Conn4) {
				if v, _ := g.Get(n); v != '#' && !yield(n) {
					return
				}
			}
		}
	}
	dist, err := search.Distances(coordinate.Cell{}, open)
	require.NoError(t, err)
	require.Equal(t, 4, dist[coordinate.Cell{Row: 2, Col: 2}])
	_, reached := dist[coordinate.Cell{Row: 0, Col: 2}]
	require.False(t, reached)
}
