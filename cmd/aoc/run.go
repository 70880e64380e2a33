package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc/input"
	"github.com/katalvlaran/aoc/puzzle"
)

// ErrNoDays is returned when nothing matches the requested selection.
var ErrNoDays = errors.New("no registered days match")

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve a day's sample and puzzle input",
		Long: `Solve one day (the configured year and day, or the latest registered day)
or, with --all, every registered day. Sample answers are compared against the
day's puzzle.toml; the real input is read from <inputs>/y<YYYY>/day<N>/input.txt
when present.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(a.cfg, cmd.Flags(), keyYear, keyDay)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")
			skip, _ := cmd.Flags().GetBool("skip-input")
			return a.run(cmd, all, skip)
		},
	}
	f := cmd.Flags()
	f.Int(keyYear, 0, "puzzle year (default: latest registered)")
	f.Int(keyDay, 0, "puzzle day (default: latest registered in the year)")
	f.Bool("all", false, "run every registered day, or every day of --year")
	f.Bool("skip-input", false, "solve the samples only")
	return cmd
}

func (a *app) run(cmd *cobra.Command, all, skipInput bool) error {
	days, err := a.selectDays(all, cmd.Flags().Changed(keyYear))
	if err != nil {
		return err
	}
	color, err := a.useColor(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	r := &puzzle.Runner{
		Out:       cmd.OutOrStdout(),
		Log:       a.log,
		Loader:    input.Loader{Fs: a.fs, Log: a.log},
		InputBase: a.cfg.GetString(keyInputs),
		RunInput:  a.cfg.GetBool(keyRunInput) && !skipInput,
		Color:     color,
	}
	reports, err := r.RunAll(days)
	if err != nil {
		return err
	}
	failed := 0
	for _, rep := range reports {
		if !rep.SampleCorrect() {
			failed++
		}
	}
	a.log.Info("run finished", zap.Int("days", len(reports)), zap.Int("sample_failures", failed))
	return nil
}

// selectDays resolves which days to run. With all, every day runs, limited
// to the configured year when one was given on the command line. Otherwise
// a missing year or day falls back to the latest registered one.
func (a *app) selectDays(all, yearFlag bool) ([]puzzle.Day, error) {
	reg := a.registry()
	year, day := a.cfg.GetInt(keyYear), a.cfg.GetInt(keyDay)

	if all {
		days := reg.All()
		if yearFlag {
			days = reg.Year(year)
		}
		if len(days) == 0 {
			return nil, errors.Wrapf(ErrNoDays, "year %d", year)
		}
		return days, nil
	}

	if year == 0 {
		latest, ok := reg.Latest()
		if !ok {
			return nil, ErrNoDays
		}
		year = latest.Year
	}
	if day == 0 {
		latest, ok := reg.LatestIn(year)
		if !ok {
			return nil, errors.Wrapf(ErrNoDays, "year %d", year)
		}
		return []puzzle.Day{latest}, nil
	}
	d, err := reg.Lookup(year, day)
	if err != nil {
		return nil, err
	}
	return []puzzle.Day{d}, nil
}

// bindFlags binds the named flags to the configuration keys of the same
// name, so an explicit flag overrides the file and the environment.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys ...string) error {
	for _, key := range keys {
		f := flags.Lookup(key)
		if f == nil {
			return errors.Newf("no flag %s", key)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind flag %s", key)
		}
	}
	return nil
}
