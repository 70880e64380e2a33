package day1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	got, err := Part1(sample, nil)
	require.NoError(t, err)
	require.Equal(t, "24000", got)

	got, err = Part2(sample, nil)
	require.NoError(t, err)
	require.Equal(t, "45000", got)
}

func TestFewerThanThreeElves(t *testing.T) {
	got, err := Part2("5\n\n6\n", nil)
	require.NoError(t, err)
	require.Equal(t, "11", got)

	_, err = Part1("5\nfive\n", nil)
	require.ErrorContains(t, err, "elf 1")
}
