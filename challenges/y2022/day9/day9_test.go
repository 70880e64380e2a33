package day9

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/coordinate"
)

func TestSample(t *testing.T) {
	got, err := Part1(sample, nil)
	require.NoError(t, err)
	require.Equal(t, "13", got)

	got, err = Part2(sample, nil)
	require.NoError(t, err)
	require.Equal(t, "1", got)
}

func TestLargerSample(t *testing.T) {
	got, err := Part2("R 5\nU 8\nL 8\nD 3\nR 17\nD 10\nL 25\nU 20\n", nil)
	require.NoError(t, err)
	require.Equal(t, "36", got)
}

func TestFollow(t *testing.T) {
	origin := coordinate.Point{}
	require.Equal(t, origin, follow(origin, coordinate.Point{X: 1, Y: 1}), "touching knots stay")
	require.Equal(t, coordinate.Point{X: 1}, follow(origin, coordinate.Point{X: 2}))
	require.Equal(t, coordinate.Point{X: 1, Y: 1}, follow(origin, coordinate.Point{X: 2, Y: 1}))
	require.Equal(t, coordinate.Point{X: -1, Y: -1}, follow(origin, coordinate.Point{X: -1, Y: -2}))
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"R", "X 3", "U three"} {
		_, err := Part1(in, nil)
		require.Error(t, err, in)
	}
}
