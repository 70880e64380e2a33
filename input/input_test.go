package input_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/aoc/input"
)

func TestLoader_Load(t *testing.T) {
	fsys := afero.NewMemMapFs()
	full := filepath.Join("inputs", "y2022", "day1", "input.txt")
	require.NoError(t, afero.WriteFile(fsys, full, []byte("1000\n2000\n"), 0o644))

	core, logs := observer.New(zap.DebugLevel)
	l := input.Loader{Fs: fsys, Log: zap.New(core)}

	text, err := l.Load("inputs", filepath.Join("y2022", "day1", "input.txt"))
	require.NoError(t, err)
	require.Equal(t, "1000\n2000\n", text)
	require.True(t, l.Exists("inputs", "y2022/day1/input.txt"))

	entries := logs.FilterMessage("loading input").All()
	require.Len(t, entries, 1)
	require.Equal(t, full, entries[0].ContextMap()["path"])
}

func TestLoader_Missing(t *testing.T) {
	l := input.Loader{Fs: afero.NewMemMapFs()}
	_, err := l.Load("inputs", "nope.txt")
	require.ErrorIs(t, err, input.ErrInputMissing)
	require.False(t, l.Exists("inputs", "nope.txt"))
}

func TestLoad_OS(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, afero.WriteFile(afero.NewOsFs(), filepath.Join(dir, "a.txt"), []byte("x"), 0o644))

	text, err := input.Load(dir, "a.txt")
	require.NoError(t, err)
	require.Equal(t, "x", text)

	_, err = input.Load(dir, "b.txt")
	require.ErrorIs(t, err, input.ErrInputMissing)
}

func TestLines(t *testing.T) {
	require.Nil(t, input.Lines(""))
	require.Nil(t, input.Lines("\n"))
	require.Equal(t, []string{"a", "b"}, input.Lines("a\nb\n"))
	require.Equal(t, []string{"a", "b"}, input.Lines("a\r\nb"))
	require.Equal(t, []string{"a", "", "b"}, input.Lines("a\n\nb\n"))
}

func TestBlocks(t *testing.T) {
	text := "1000\n2000\n\n4000\n\n\n5000\n6000\n\n"
	require.Equal(t, [][]string{{"1000", "2000"}, {"4000"}, {"5000", "6000"}}, input.Blocks(text))
	require.Nil(t, input.Blocks(""))
}

func TestInts(t *testing.T) {
	got, err := input.Ints("Sensor at x=2, y=-18: closest beacon is at x=-2, y=15")
	require.NoError(t, err)
	require.Equal(t, []int{2, -18, -2, 15}, got)

	got, err = input.Ints("no numbers")
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = input.Ints("99999999999999999999999")
	require.Error(t, err)
}

func TestBytes(t *testing.T) {
	require.Equal(t, [][]byte{[]byte("ab"), []byte("cd")}, input.Bytes("ab\ncd\n"))
	require.Empty(t, input.Bytes(""))
}
