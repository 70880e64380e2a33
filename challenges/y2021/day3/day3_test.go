package day3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	got, err := Part1(sample, nil)
	require.NoError(t, err)
	require.Equal(t, "198", got)

	got, err = Part2(sample, nil)
	require.NoError(t, err)
	require.Equal(t, "230", got)
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "01\n1\n", "012\n"} {
		_, err := Part1(in, nil)
		require.Error(t, err, in)
	}
}
