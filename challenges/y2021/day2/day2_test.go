package day2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	got, err := Part1(sample, nil)
	require.NoError(t, err)
	require.Equal(t, "150", got)

	got, err = Part2(sample, nil)
	require.NoError(t, err)
	require.Equal(t, "900", got)
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"forward", "sideways 3", "up x"} {
		_, err := Part1(in, nil)
		require.Error(t, err, in)
	}
}
