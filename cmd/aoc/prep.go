package main

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"text/template"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const modulePath = "github.com/katalvlaran/aoc"

var (
	//go:embed templates/*.tmpl
	templateFS embed.FS

	templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

	dayDirPattern = regexp.MustCompile(`^y(\d{4})/day(\d{1,2})$`)
)

var (
	// ErrDayExists is returned when the day's directory is already present.
	ErrDayExists = errors.New("day already scaffolded")

	// ErrBadDay is returned for a day outside 1..25 or a non-positive year.
	ErrBadDay = errors.New("year and day out of range")
)

type dayRef struct {
	Year, Day int
	Title     string
}

func (d dayRef) Dir() string   { return path.Join(fmt.Sprintf("y%d", d.Year), fmt.Sprintf("day%d", d.Day)) }
func (d dayRef) Alias() string { return fmt.Sprintf("y%dday%d", d.Year, d.Day) }

func newPrepCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prep",
		Short: "Scaffold a new day and make it the default",
		Long: `Create challenges/y<YYYY>/day<N> with a solver stub, a test, an empty
sample.txt and a puzzle.toml with unknown expectations, regenerate the day list
in challenges/challenges.go, and record the day as the default in the config
file.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(a.cfg, cmd.Flags(), keyYear, keyDay)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _ := cmd.Flags().GetString("dir")
			title, _ := cmd.Flags().GetString("title")
			configPath, _ := cmd.Flags().GetString("config")
			d := dayRef{Year: a.cfg.GetInt(keyYear), Day: a.cfg.GetInt(keyDay), Title: title}
			if d.Title == "" {
				d.Title = fmt.Sprintf("Day %d", d.Day)
			}
			return a.prep(cmd, root, configPath, d)
		},
	}
	f := cmd.Flags()
	f.Int(keyYear, 0, "puzzle year")
	f.Int(keyDay, 0, "puzzle day (1-25)")
	f.String("title", "", "puzzle title")
	f.String("dir", "challenges", "challenges package directory")
	_ = cmd.MarkFlagRequired(keyYear)
	_ = cmd.MarkFlagRequired(keyDay)
	return cmd
}

func (a *app) prep(cmd *cobra.Command, root, configPath string, d dayRef) error {
	if d.Year <= 0 || d.Day < 1 || d.Day > 25 {
		return errors.Wrapf(ErrBadDay, "%d day %d", d.Year, d.Day)
	}
	dir := filepath.Join(root, filepath.FromSlash(d.Dir()))
	exists, err := afero.DirExists(a.fs, dir)
	if err != nil {
		return errors.Wrapf(err, "stat %s", dir)
	}
	if exists {
		return errors.Wrapf(ErrDayExists, "%s", dir)
	}

	files, err := dayFiles(d)
	if err != nil {
		return err
	}
	if err := a.fs.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}
	out := cmd.OutOrStdout()
	if err := a.writeDay(out, root, dir, files); err != nil {
		// Leave no partial day behind.
		if rmErr := a.fs.RemoveAll(dir); rmErr != nil {
			a.log.Warn("cannot remove partial day", zap.String("dir", dir), zap.Error(rmErr))
		}
		return err
	}

	if err := a.setDefaultDay(configPath, d); err != nil {
		return err
	}
	fmt.Fprintln(out, "updated", configPath)
	a.log.Info("day scaffolded", zap.Int("year", d.Year), zap.Int("day", d.Day))
	return nil
}

type dayFile struct {
	name string
	body []byte
}

// dayFiles renders every file of a new day directory.
func dayFiles(d dayRef) ([]dayFile, error) {
	layout := []struct {
		name, tmpl string
		gofmt      bool
	}{
		{fmt.Sprintf("day%d.go", d.Day), "day.go.tmpl", true},
		{fmt.Sprintf("day%d_test.go", d.Day), "day_test.go.tmpl", true},
		{"puzzle.toml", "puzzle.toml.tmpl", false},
		{"sample.txt", "", false},
	}
	files := make([]dayFile, 0, len(layout))
	for _, f := range layout {
		var body []byte
		if f.tmpl != "" {
			var err error
			if body, err = render(f.tmpl, d, f.gofmt); err != nil {
				return nil, err
			}
		}
		files = append(files, dayFile{name: f.name, body: body})
	}
	return files, nil
}

// writeDay writes the rendered files into dir and regenerates the day list.
func (a *app) writeDay(out io.Writer, root, dir string, files []dayFile) error {
	for _, f := range files {
		p := filepath.Join(dir, f.name)
		if err := afero.WriteFile(a.fs, p, f.body, 0o644); err != nil {
			return errors.Wrapf(err, "write %s", p)
		}
		fmt.Fprintln(out, "created", p)
	}
	if err := a.writeDayList(root); err != nil {
		return err
	}
	fmt.Fprintln(out, "updated", filepath.Join(root, "challenges.go"))
	return nil
}

func render(name string, data any, gofmt bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, errors.Wrapf(err, "render %s", name)
	}
	if !gofmt {
		return buf.Bytes(), nil
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "format %s", name)
	}
	return src, nil
}

// scanDays finds every y<YYYY>/day<N> directory under root, ordered by
// year then day.
func (a *app) scanDays(root string) ([]dayRef, error) {
	years, err := afero.ReadDir(a.fs, root)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", root)
	}
	var days []dayRef
	for _, y := range years {
		if !y.IsDir() {
			continue
		}
		entries, err := afero.ReadDir(a.fs, filepath.Join(root, y.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", y.Name())
		}
		for _, e := range entries {
			m := dayDirPattern.FindStringSubmatch(y.Name() + "/" + e.Name())
			if !e.IsDir() || m == nil {
				continue
			}
			year, _ := strconv.Atoi(m[1])
			day, _ := strconv.Atoi(m[2])
			days = append(days, dayRef{Year: year, Day: day})
		}
	}
	slices.SortFunc(days, func(a, b dayRef) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return a.Day - b.Day
	})
	return days, nil
}

// dayListSource renders challenges.go for the day directories under root.
func (a *app) dayListSource(root string) ([]byte, error) {
	days, err := a.scanDays(root)
	if err != nil {
		return nil, err
	}
	return render("challenges.go.tmpl", struct {
		Module string
		Days   []dayRef
	}{modulePath, days}, true)
}

// writeDayList regenerates root/challenges.go from the day directories.
func (a *app) writeDayList(root string) error {
	src, err := a.dayListSource(root)
	if err != nil {
		return err
	}
	p := filepath.Join(root, "challenges.go")
	return errors.Wrapf(afero.WriteFile(a.fs, p, src, 0o644), "write %s", p)
}

// setDefaultDay rewrites the config file with year and day set, keeping
// every other setting.
func (a *app) setDefaultDay(configPath string, d dayRef) error {
	settings := map[string]any{}
	data, err := afero.ReadFile(a.fs, configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return errors.Wrapf(err, "read %s", configPath)
	default:
		if _, err := toml.Decode(string(data), &settings); err != nil {
			return errors.Wrapf(err, "parse %s", configPath)
		}
	}
	settings[keyYear] = d.Year
	settings[keyDay] = d.Day

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(settings); err != nil {
		return errors.Wrapf(err, "encode %s", configPath)
	}
	return errors.Wrapf(afero.WriteFile(a.fs, configPath, buf.Bytes(), 0o644), "write %s", configPath)
}
