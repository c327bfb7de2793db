package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"simlife/src/config"
	"simlife/src/universe"
	"simlife/src/view"
)

func main() {
	cfg := initOptions()

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	o := cfg.UniverseOptions(logger)
	u, err := universe.New(&o)
	if err != nil {
		fatal(logger, "can't create the universe", err)
	}

	if cfg.Random {
		err = u.SettleRandom(cfg.Seed, cfg.Density)
	} else {
		err = settleCentered(u, cfg.Template)
	}
	if err != nil {
		fatal(logger, "can't settle the universe", err)
	}

	if cfg.Interactive {
		v := view.NewViewTerminal(cfg.Seed, cfg.Density)
		u.RegisterViewer(v)
		v.Start()
		u.Stop()
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	out := view.NewConsoleOut(os.Stdout, true, 10)
	u.RegisterViewer(out)
	out.Start()
	if err := u.Run(cfg.Interval); err != nil {
		fatal(logger, "can't run the universe", err)
	}
	select {
	case <-out.Done():
	case <-ctx.Done():
		u.Stop()
		out.Interrupted()
	}
	u.Stop()
}

//initOptions loads the config file (if any) and applies the command line flags over it
func initOptions() config.Config {
	path := configPath(os.Args[1:])
	cfg := config.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
			os.Exit(2)
		}
	}

	flaggy.SetName("simlife")
	flaggy.SetDescription("Conway's Game of Life simulation")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&path, "c", "config", "JSON configuration file, the flags override its values")
	flaggy.Int(&cfg.Width, "x", "width", "Width of a simulation field")
	flaggy.Int(&cfg.Height, "y", "height", "Height of a simulation field")
	flaggy.Duration(&cfg.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&cfg.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps, 0 means no limit")
	flaggy.Bool(&cfg.HaltOnStable, "", "halt", "Finish the simulation when nothing changes")
	flaggy.String(&cfg.Engine, "e", "engine", "Engine to use ["+strings.Join(universe.Engines(), "|")+"]")
	flaggy.Int(&cfg.Workers, "w", "workers", "Workers of the multithreaded engine, 0 means the number of CPUs")
	flaggy.Bool(&cfg.Interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&cfg.Random, "r", "random", "Settle with random data")
	flaggy.Float64(&cfg.Density, "", "density", "Share of the live cells for the random data")
	flaggy.Int64(&cfg.Seed, "", "seed", "Seed of the random data")
	flaggy.String(&cfg.Template, "t", "template", "Template to settle in the center of the field")
	flaggy.String(&cfg.LogLevel, "", "log-level", "Log level [debug|info|warn|error|none]")
	flaggy.String(&cfg.LogFile, "", "log-file", "Log file, the interactive mode logs nothing without it")

	flaggy.Parse()

	if err := cfg.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	return cfg
}

//configPath finds the -c/--config value before the flags are parsed
func configPath(args []string) string {
	for i, a := range args {
		switch {
		case a == "-c" || a == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "-c="):
			return strings.TrimPrefix(a, "-c=")
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		}
	}
	return ""
}

//newLogger writes to stderr in the headless mode
//the terminal UI owns the screen, so the interactive mode logs to the file only
func newLogger(cfg config.Config) (log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeLog := func() {}
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "[newLogger] failed to open log file: %+v", cfg.LogFile)
		}
		w = f
		closeLog = func() { _ = f.Close() }
	case cfg.Interactive:
		return log.NewNopLogger(), closeLog, nil
	}
	return cfg.Logger(w), closeLog, nil
}

//settleCentered places the template in the center of the field
func settleCentered(u universe.Universe, name string) error {
	for _, tmpl := range u.Templates() {
		if tmpl.Name == name {
			x, y := templateOrigin(tmpl, u.Width(), u.Height())
			return u.SettleTemplate(name, x, y)
		}
	}
	return errors.Wrapf(universe.ErrUnknownTemplate, "[settleCentered] %q", name)
}

//templateOrigin returns the position which centers the template on the field
func templateOrigin(tmpl universe.Template, width int, height int) (int, int) {
	tw, th := 0, 0
	for _, v := range tmpl.Coordinates {
		if len(v) != 2 {
			continue
		}
		tw = max(tw, v[0]+1)
		th = max(th, v[1]+1)
	}
	return max(0, (width-tw)/2), max(0, (height-th)/2)
}

func fatal(logger log.Logger, msg string, err error) {
	_ = level.Error(logger).Log("msg", msg, "err", fmt.Sprintf("%+v", err))
	os.Exit(1)
}
