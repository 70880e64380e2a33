package day1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	got, err := Part1(sample, Day.Manifest.Sample.Params)
	require.NoError(t, err)
	require.Equal(t, "7", got)

	got, err = Part2(sample, Day.Manifest.Sample.Params)
	require.NoError(t, err)
	require.Equal(t, "5", got)
}

func TestParseError(t *testing.T) {
	_, err := Part1("1\nx\n", nil)
	require.ErrorContains(t, err, "line 2")
}
