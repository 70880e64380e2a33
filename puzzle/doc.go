// Package puzzle describes a single Advent of Code day and runs it.
//
// A Day bundles the two part solvers with the day's embedded sample text
// and its manifest (puzzle.toml), which records the expected sample answers
// and any per-input parameters. A Registry indexes days by year and day
// number, and a Runner solves the sample, compares it against the
// expectations, optionally solves the real input, and prints a report.
//
// A wrong sample answer is reported, never returned as an error. A solver
// error aborts the run.
package puzzle
