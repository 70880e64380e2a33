package day3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	got, err := Part1(sample, nil)
	require.NoError(t, err)
	require.Equal(t, "157", got)

	got, err = Part2(sample, nil)
	require.NoError(t, err)
	require.Equal(t, "70", got)
}

func TestErrors(t *testing.T) {
	for _, in := range []string{"abc\n", "ab\n", "a1a1\n"} {
		_, err := Part1(in, nil)
		require.Error(t, err, in)
	}
	_, err := Part2("a\na\n", nil)
	require.Error(t, err)
}
