package main

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/katalvlaran/aoc/challenges"
	"github.com/katalvlaran/aoc/puzzle"
)

// Configuration keys, shared by aoc.toml, AOC_* variables and flags.
const (
	keyYear     = "year"
	keyDay      = "day"
	keyInputs   = "inputs"
	keyRunInput = "run_input"
	keyColor    = "color"
	keyVerbose  = "verbose"
)

// ErrBadColor is returned for a color setting other than auto, on or off.
var ErrBadColor = errors.New("color must be auto, on or off")

// app carries the process-wide dependencies so tests can swap them.
type app struct {
	fs       afero.Fs
	cfg      *viper.Viper
	log      *zap.Logger
	registry func() *puzzle.Registry
}

func newApp() *app {
	return &app{
		fs:       afero.NewOsFs(),
		cfg:      viper.New(),
		log:      zap.NewNop(),
		registry: challenges.All,
	}
}

var rootLong = `aoc runs Advent of Code solutions.

Settings come from aoc.toml in the working directory, AOC_* environment
variables (AOC_YEAR, AOC_DAY, AOC_INPUTS, AOC_RUN_INPUT, AOC_COLOR,
AOC_VERBOSE) and flags, in increasing priority.`

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Advent of Code runner",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.String("config", "aoc.toml", "path of the configuration file")
	pf.String(keyColor, "auto", "colorize output (auto|on|off)")
	pf.BoolP(keyVerbose, "v", false, "log debug output to stderr")
	pf.String(keyInputs, "inputs", "directory holding y<YYYY>/day<N>/input.txt")

	root.AddCommand(newRunCmd(a), newListCmd(a), newPrepCmd(a))
	return root
}

// loadConfig layers defaults, the config file, the environment and the
// root flags into a.cfg, then builds the logger.
func (a *app) loadConfig(cmd *cobra.Command) error {
	v := a.cfg
	v.SetFs(a.fs)
	v.SetDefault(keyInputs, "inputs")
	v.SetDefault(keyRunInput, true)
	v.SetDefault(keyColor, "auto")
	v.SetEnvPrefix("AOC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, cmd.Flags(), keyColor, keyVerbose, keyInputs); err != nil {
		return err
	}

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	ok, err := afero.Exists(a.fs, path)
	if err != nil {
		return errors.Wrapf(err, "stat %s", path)
	}
	if ok {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read %s", path)
		}
	}

	if v.GetBool(keyVerbose) {
		log, err := zap.NewDevelopment()
		if err != nil {
			return errors.Wrap(err, "build logger")
		}
		a.log = log
	}
	a.log.Debug("configuration loaded", zap.String("file", v.ConfigFileUsed()), zap.Any("settings", v.AllSettings()))
	return nil
}

// useColor resolves the color setting for out.
func (a *app) useColor(out io.Writer) (bool, error) {
	switch strings.ToLower(a.cfg.GetString(keyColor)) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto", "":
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	}
	return false, errors.Wrapf(ErrBadColor, "%q", a.cfg.GetString(keyColor))
}
