package puzzle

import (
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// ErrBadManifest is returned when a puzzle.toml cannot be decoded or is
// missing its [sample] table.
var ErrBadManifest = errors.New("puzzle: invalid manifest")

// Unknown marks an expectation that has not been filled in yet.
const Unknown = "-1"

// Params are named integer knobs passed to solvers, such as the row that
// 2022 day 15 inspects, which differs between sample and real input.
type Params map[string]int64

// Int returns the named parameter, or fallback when it is not set.
func (p Params) Int(name string, fallback int64) int64 {
	if v, ok := p[name]; ok {
		return v
	}
	return fallback
}

// Expectation holds the known answers and parameters for one input.
type Expectation struct {
	Part1  string `toml:"part1"`
	Part2  string `toml:"part2"`
	Params Params `toml:"params"`
}

// Answer returns the expected answer for part (1 or 2) and whether it is
// known. Empty strings and Unknown count as not known.
func (e Expectation) Answer(part int) (string, bool) {
	var s string
	switch part {
	case 1:
		s = e.Part1
	case 2:
		s = e.Part2
	default:
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" || s == Unknown {
		return "", false
	}
	return s, true
}

// Manifest is the decoded form of a day's puzzle.toml:
//
//	[sample]
//	part1 = "31"
//	part2 = "29"
//	[sample.params]
//	row = 10
//	[input.params]
//	row = 2000000
type Manifest struct {
	Sample Expectation `toml:"sample"`
	Input  Expectation `toml:"input"`
}

// rawExpectation accepts answers written either as strings or integers.
type rawExpectation struct {
	Part1  any    `toml:"part1"`
	Part2  any    `toml:"part2"`
	Params Params `toml:"params"`
}

type rawManifest struct {
	Sample rawExpectation `toml:"sample"`
	Input  rawExpectation `toml:"input"`
}

// ParseManifest decodes manifest text.
func ParseManifest(text string) (Manifest, error) {
	var raw rawManifest
	meta, err := toml.Decode(text, &raw)
	if err != nil {
		return Manifest{}, errors.Mark(errors.Wrap(err, "puzzle: decode manifest"), ErrBadManifest)
	}
	if !meta.IsDefined("sample") {
		return Manifest{}, errors.Wrap(ErrBadManifest, "missing [sample]")
	}
	sample, err := raw.Sample.resolve("sample")
	if err != nil {
		return Manifest{}, err
	}
	in, err := raw.Input.resolve("input")
	if err != nil {
		return Manifest{}, err
	}
	return Manifest{Sample: sample, Input: in}, nil
}

func (r rawExpectation) resolve(table string) (Expectation, error) {
	p1, err := answerString(r.Part1)
	if err != nil {
		return Expectation{}, errors.Wrapf(err, "[%s].part1", table)
	}
	p2, err := answerString(r.Part2)
	if err != nil {
		return Expectation{}, errors.Wrapf(err, "[%s].part2", table)
	}
	return Expectation{Part1: p1, Part2: p2, Params: r.Params}, nil
}

func answerString(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	default:
		return "", errors.Wrapf(ErrBadManifest, "answer must be a string or integer, got %T", v)
	}
}
