package puzzle

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc/input"
)

// PartReport is the outcome of one part of a run.
type PartReport struct {
	Part int
	// Implemented is false when the day has no solver for this part.
	Implemented bool
	Sample      string
	Expected    string
	// Known reports whether the manifest carries an expected sample answer.
	Known   bool
	Correct bool
	// Answer is the real-input answer; empty when the input was not run.
	Answer string
}

// Report summarizes one day's run.
type Report struct {
	Day   Day
	Parts [2]PartReport
	// InputRun reports whether the real input was found and solved.
	InputRun bool
}

// SampleCorrect reports whether every implemented part with a known
// expectation matched it.
func (r *Report) SampleCorrect() bool {
	for _, p := range r.Parts {
		if p.Implemented && p.Known && !p.Correct {
			return false
		}
	}
	return true
}

// Runner solves days and prints their reports.
type Runner struct {
	Out    io.Writer
	Log    *zap.Logger
	Loader input.Loader
	// InputBase is the root directory holding y<YYYY>/day<N>/input.txt.
	InputBase string
	RunInput  bool
	Color     bool
}

type palette struct {
	header, ok, bad *color.Color
}

func (r *Runner) palette() palette {
	p := palette{
		header: color.New(color.FgCyan, color.Bold),
		ok:     color.New(color.FgGreen, color.Bold),
		bad:    color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.header, p.ok, p.bad} {
		if r.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Run solves d's sample, compares it against the manifest, solves the real
// input when enabled and present, and prints the report to Out.
func (r *Runner) Run(d Day) (*Report, error) {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.Int("year", d.Year), zap.Int("day", d.Day))
	pal := r.palette()

	rep := &Report{Day: d}
	pal.header.Fprintln(out, d.String())

	for i := range rep.Parts {
		part := i + 1
		pr := &rep.Parts[i]
		pr.Part = part
		solve := d.Solver(part)
		if solve == nil {
			fmt.Fprintf(out, "Example part %d: not implemented\n", part)
			continue
		}
		pr.Implemented = true

		log.Debug("solving sample", zap.Int("part", part))
		got, err := solve(d.Sample, d.Manifest.Sample.Params)
		if err != nil {
			return rep, errors.Wrapf(err, "%d day %d part %d (sample)", d.Year, d.Day, part)
		}
		pr.Sample = got
		pr.Expected, pr.Known = d.Manifest.Sample.Answer(part)
		pr.Correct = pr.Known && got == pr.Expected

		fmt.Fprintf(out, "Example part %d\n", part)
		switch {
		case !pr.Known:
			fmt.Fprintf(out, "Answer: %s\n", got)
		case pr.Correct:
			fmt.Fprintf(out, "Answer: %s %s\n", got, pal.ok.Sprint("CORRECT!!!"))
		default:
			fmt.Fprintf(out, "Answer: %s %s\n", got, pal.bad.Sprintf("(expected %s)", pr.Expected))
			log.Warn("sample answer mismatch",
				zap.Int("part", part), zap.String("got", got), zap.String("expected", pr.Expected))
		}
	}

	if r.RunInput {
		if err := r.runInput(d, rep, out, log); err != nil {
			return rep, err
		}
	}

	for _, pr := range rep.Parts {
		if !pr.Implemented || !pr.Known {
			continue
		}
		if pr.Correct {
			pal.ok.Fprintf(out, "EXAMPLE PART %d CORRECT\n", pr.Part)
		} else {
			pal.bad.Fprintf(out, "EXAMPLE PART %d FAILED\n", pr.Part)
		}
	}
	return rep, nil
}

func (r *Runner) runInput(d Day, rep *Report, out io.Writer, log *zap.Logger) error {
	text, err := r.Loader.Load(r.InputBase, d.InputPath())
	if errors.Is(err, input.ErrInputMissing) {
		log.Info("no puzzle input, skipping", zap.String("path", d.InputPath()))
		return nil
	}
	if err != nil {
		return err
	}
	rep.InputRun = true
	for i := range rep.Parts {
		pr := &rep.Parts[i]
		if !pr.Implemented {
			continue
		}
		log.Debug("solving input", zap.Int("part", pr.Part))
		got, err := d.Solver(pr.Part)(text, d.Manifest.Input.Params)
		if err != nil {
			return errors.Wrapf(err, "%d day %d part %d (input)", d.Year, d.Day, pr.Part)
		}
		pr.Answer = got
		fmt.Fprintf(out, "Part %d: %s\n", pr.Part, got)
	}
	return nil
}

// RunAll runs each day in order and stops at the first error.
func (r *Runner) RunAll(days []Day) ([]*Report, error) {
	reports := make([]*Report, 0, len(days))
	for _, d := range days {
		rep, err := r.Run(d)
		reports = append(reports, rep)
		if err != nil {
			return reports, err
		}
	}
	return reports, nil
}
