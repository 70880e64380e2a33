// Package input reads puzzle text from disk and splits it into the shapes
// day solvers parse: lines and blank-line separated blocks.
//
// Files are resolved relative to a base directory through an afero.Fs, so
// tests run against an in-memory filesystem while the console program uses
// the real one.
package input
