package challenges_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/challenges"
	"github.com/katalvlaran/aoc/puzzle"
)

func TestAll(t *testing.T) {
	r := challenges.All()
	require.Equal(t, len(challenges.Days()), r.Len())
	require.Equal(t, []int{2021, 2022}, r.Years())

	d, err := r.Lookup(2022, 12)
	require.NoError(t, err)
	require.Equal(t, "Hill Climbing Algorithm", d.Title)
}

// TestSamples runs every registered day through the runner and requires
// each known sample answer to match.
func TestSamples(t *testing.T) {
	for _, d := range challenges.All().All() {
		t.Run(d.Dir(), func(t *testing.T) {
			require.NotEmpty(t, d.Sample)
			runner := &puzzle.Runner{Out: &bytes.Buffer{}}
			rep, err := runner.Run(d)
			require.NoError(t, err)
			require.True(t, rep.SampleCorrect(), "%+v", rep.Parts)
			for _, p := range rep.Parts {
				require.True(t, p.Known, "part %d has no expected sample answer", p.Part)
			}
		})
	}
}
