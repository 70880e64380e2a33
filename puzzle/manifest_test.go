package puzzle_test

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/puzzle"
)

func TestParseManifest(t *testing.T) {
	m, err := puzzle.ParseManifest(`
[sample]
part1 = "26"
part2 = 56000011

[sample.params]
row = 10
max = 20

[input.params]
row = 2000000
`)
	require.NoError(t, err)

	got, ok := m.Sample.Answer(1)
	require.True(t, ok)
	require.Equal(t, "26", got)
	got, ok = m.Sample.Answer(2)
	require.True(t, ok)
	require.Equal(t, "56000011", got)
	_, ok = m.Sample.Answer(3)
	require.False(t, ok)

	require.Equal(t, int64(10), m.Sample.Params.Int("row", 0))
	require.Equal(t, int64(2000000), m.Input.Params.Int("row", 0))
	require.Equal(t, int64(4000000), m.Input.Params.Int("max", 4000000))
}

func TestParseManifest_Unknown(t *testing.T) {
	m, err := puzzle.ParseManifest("[sample]\npart1 = \"-1\"\n")
	require.NoError(t, err)
	_, ok := m.Sample.Answer(1)
	require.False(t, ok)
	_, ok = m.Sample.Answer(2)
	require.False(t, ok)
	require.Equal(t, int64(7), puzzle.Params(nil).Int("x", 7))
}

func TestParseManifest_Errors(t *testing.T) {
	for name, text := range map[string]string{
		"syntax":    "[sample\n",
		"no sample": "[input]\npart1 = \"1\"\n",
		"bad type":  "[sample]\npart1 = 1.5\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := puzzle.ParseManifest(text)
			require.ErrorIs(t, err, puzzle.ErrBadManifest)
		})
	}
}

func TestMustDay_Panics(t *testing.T) {
	require.Panics(t, func() {
		puzzle.MustDay(2022, 1, "x", nil, nil, "", "not toml [")
	})
}

// TestParseManifest_SyntaxPosition keeps the decoder's position details
// reachable alongside ErrBadManifest.
func TestParseManifest_SyntaxPosition(t *testing.T) {
	_, err := puzzle.ParseManifest("[sample]\npart1 = \"1\"\npart2 = = 2\n")
	require.ErrorIs(t, err, puzzle.ErrBadManifest)

	var perr toml.ParseError
	require.True(t, errors.As(err, &perr), "%+v", err)
	require.Equal(t, 3, perr.Position.Line)
}
