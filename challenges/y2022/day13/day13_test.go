package day13

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	got, err := Part1(sample, nil)
	require.NoError(t, err)
	require.Equal(t, "13", got)

	got, err = Part2(sample, nil)
	require.NoError(t, err)
	require.Equal(t, "140", got)
}

// TestSamplePairs checks the sample pair by pair, so a damaged sample line
// shows up as the pair it breaks.
func TestSamplePairs(t *testing.T) {
	ordered := []bool{true, true, false, true, false, true, false, false}
	blocks := strings.Split(strings.TrimSpace(sample), "\n\n")
	require.Len(t, blocks, len(ordered))
	for i, block := range blocks {
		want := "0"
		if ordered[i] {
			want = "1"
		}
		got, err := Part1(block+"\n", nil)
		require.NoError(t, err)
		require.Equal(t, want, got, "pair %d", i+1)
	}

	got, err := Part1("[[1],[2,3,4]]\n[[1],4]\n", nil)
	require.NoError(t, err)
	require.Equal(t, "1", got)
}

func TestCompare(t *testing.T) {
	mustParse := func(s string) packet {
		p, err := parsePacket(s)
		require.NoError(t, err)
		return p
	}
	require.Less(t, compare(mustParse("[[1],[2,3,4]]"), mustParse("[[1],4]")), 0)
	require.Greater(t, compare(mustParse("[9]"), mustParse("[[8,7,6]]")), 0)
	require.Zero(t, compare(mustParse("[[2]]"), mustParse("[2]")))

	ps := []packet{mustParse("[3]"), mustParse("[]"), mustParse("[[1]]")}
	want := []packet{ps[1], ps[2], ps[0]}
	slices.SortFunc(ps, compare)
	require.Equal(t, want, ps)
}

func TestErrors(t *testing.T) {
	_, err := Part1("[1]\n", nil)
	require.Error(t, err)
	_, err = Part1("[1\n[2]\n", nil)
	require.Error(t, err)
	_, err = Part2("[1,\n", nil)
	require.Error(t, err)
}
