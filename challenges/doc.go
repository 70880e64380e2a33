// Package challenges registers every solved Advent of Code day.
//
// Each day lives in its own package under y<YYYY>/day<N> and exports a
// puzzle.Day. The list in challenges.go is regenerated by "aoc prep".
package challenges
