package input

import (
	"io/fs"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ErrInputMissing is returned when the requested file does not exist.
var ErrInputMissing = errors.New("input: file does not exist")

// Loader reads whole files from Fs. A nil Fs means the OS filesystem and a
// nil Log means no logging.
type Loader struct {
	Fs  afero.Fs
	Log *zap.Logger
}

// Load reads the file at path under base using the OS filesystem.
func Load(base, path string) (string, error) {
	return Loader{}.Load(base, path)
}

// Load joins base and path and returns the full file contents.
func (l Loader) Load(base, path string) (string, error) {
	fsys := l.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	log := l.Log
	if log == nil {
		log = zap.NewNop()
	}

	full := filepath.Join(base, path)
	log.Debug("loading input", zap.String("path", full))

	data, err := afero.ReadFile(fsys, full)
	if errors.Is(err, fs.ErrNotExist) {
		return "", errors.Wrapf(ErrInputMissing, "%s", full)
	}
	if err != nil {
		return "", errors.Wrapf(err, "input: read %s", full)
	}
	log.Debug("input loaded", zap.String("path", full), zap.Int("bytes", len(data)))
	return string(data), nil
}

// Exists reports whether path under base names an existing file.
func (l Loader) Exists(base, path string) bool {
	fsys := l.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	ok, err := afero.Exists(fsys, filepath.Join(base, path))
	return err == nil && ok
}

// Lines splits text on newlines. A single trailing newline does not produce
// an empty last line, and "\r\n" endings are accepted.
func Lines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Blocks splits text into groups of lines separated by one or more blank
// lines. Empty groups are never returned.
func Blocks(text string) [][]string {
	var (
		out [][]string
		cur []string
	)
	for _, line := range Lines(text) {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// Bytes returns each line as its own byte slice, the usual shape for
// character grids fed to grid.FromRows.
func Bytes(text string) [][]byte {
	lines := Lines(text)
	out := make([][]byte, len(lines))
	for i, l := range lines {
		out[i] = []byte(l)
	}
	return out
}

var intPattern = regexp.MustCompile(`-?\d+`)

// Ints extracts every signed decimal integer in s, in order, ignoring the
// surrounding text. "x=-2, y=15" yields [-2 15].
func Ints(s string) ([]int, error) {
	matches := intPattern.FindAllString(s, -1)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.Atoi(m)
		if err != nil {
			return nil, errors.Wrapf(err, "input: integer %q", m)
		}
		out = append(out, v)
	}
	return out, nil
}
