package day11

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	got, err := Part1(sample, nil)
	require.NoError(t, err)
	require.Equal(t, "10605", got)

	got, err = Part2(sample, nil)
	require.NoError(t, err)
	require.Equal(t, "2713310158", got)
}

func TestParse(t *testing.T) {
	ms, err := parse(sample)
	require.NoError(t, err)
	require.Len(t, ms, 4)
	require.Equal(t, []int64{54, 65, 75, 74}, ms[1].items)
	require.Equal(t, [2]int{0, 2}, ms[1].target)
	require.Equal(t, int64(79*79), ms[2].inspect(79))
	require.Equal(t, int64(82), ms[3].inspect(79))
}

func TestErrors(t *testing.T) {
	bad := []string{
		"Monkey 0:\n  Starting items: 1\n",
		"Monkey 0:\n  Starting items: 1\n  Operation: new = old - 2\n  Test: divisible by 2\n    If true: throw to monkey 1\n    If false: throw to monkey 1\n",
		"Monkey 0:\n  Starting items: 1\n  Operation: new = old * 2\n  Test: divisible by 2\n    If true: throw to monkey 5\n    If false: throw to monkey 0\n",
	}
	for _, in := range bad {
		_, err := Part1(in, nil)
		require.Error(t, err, in)
	}
}
