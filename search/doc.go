// Package search provides breadth-first search over an implicit graph of
// comparable nodes, returning unweighted shortest-path distances, parent
// links, and visit order.
//
// The graph is never materialized: the caller supplies a neighbor function,
// which makes grids, state spaces and adjacency maps equally easy to search.
// BFS explores nodes in increasing distance from the start, with optional
// hooks, depth limiting, and neighbor filtering.
//
// Typical use on a grid:
//
//	dist, err := search.Distances(start, func(c coordinate.Cell) iter.Seq[coordinate.Cell] {
//		return g.Neighbors(c, grid.Conn4)
//	})
package search
