// Package aoc is a toolkit for Advent of Code puzzles and the solutions
// built on it.
//
// The reusable pieces are plain generic packages:
//
//	interval/   closed integer ranges: union, intersection, merging
//	coordinate/ directions, orientation-aware 2D coordinates, bounding boxes
//	grid/       sparse 2D tile maps that track their bounding box
//	position/   a grid position with an optional facing
//	search/     breadth-first search over implicit graphs
//	input/      loading puzzle text and splitting it into lines and blocks
//	puzzle/     day descriptors, expectations, registry and runner
//
// Solutions live under challenges/y<YYYY>/day<N>, one package per day, each
// embedding its sample and a puzzle.toml with the expected sample answers.
// The aoc command (cmd/aoc) runs them:
//
//	aoc run --year 2022 --day 12
//	aoc run --all --skip-input
//	aoc list
//	aoc prep --year 2023 --day 1 --title "Trebuchet?!"
//
// Orientation is part of a coordinate's type. A Cell (row/column, rows
// growing downward) and a Point (x/y, y growing upward) never mix, and
// "Up" always means up on screen:
//
//	c := coordinate.Cell{Row: 2, Col: 3}
//	c.Up(1)   // <r=1,c=3>
//	p := coordinate.Point{X: 2, Y: 3}
//	p.Up(1)   // <x=2,y=4>
package aoc
