package config

import (
	"encoding/json"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"simlife/src/universe"
)

// Config holds the configuration of the simulation run
type Config struct {
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	Interval     time.Duration `json:"-"`
	MaxSteps     int           `json:"max_steps"`
	Engine       string        `json:"engine"`
	Workers      int           `json:"workers"`
	HaltOnStable bool          `json:"halt_on_stable"`
	Template     string        `json:"template"`
	Random       bool          `json:"random"`
	Density      float64       `json:"density"`
	Seed         int64         `json:"seed"`
	Interactive  bool          `json:"interactive"`
	LogLevel     string        `json:"log_level"`
	LogFile      string        `json:"log_file"`
}

const (
	DefMaxSteps = 1000
	DefDensity  = 0.25
	DefTemplate = "sample"
	DefLogLevel = "info"
)

var logLevels = map[string]level.Option{
	"debug": level.AllowDebug(),
	"info":  level.AllowInfo(),
	"warn":  level.AllowWarn(),
	"error": level.AllowError(),
	"none":  level.AllowNone(),
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	o := universe.DefaultUniverseOptions
	return Config{
		Width:    o.Width,
		Height:   o.Height,
		Interval: o.Interval,
		MaxSteps: DefMaxSteps,
		Engine:   o.Engine,
		Template: DefTemplate,
		Density:  DefDensity,
		Seed:     time.Now().UnixNano(),
		LogLevel: DefLogLevel,
	}
}

// Load loads configuration from JSON file on top of the defaults
func Load(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[Load] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[Load] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// UnmarshalJSON reads the interval in time.ParseDuration format, for example "150ms"
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	aux := struct {
		*plain
		Interval *string `json:"interval"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Interval != nil {
		d, err := time.ParseDuration(*aux.Interval)
		if err != nil {
			return errors.Wrapf(err, "[Config.UnmarshalJSON] interval %q", *aux.Interval)
		}
		c.Interval = d
	}
	return nil
}

// Validate checks the values which the universe would reject
func (c Config) Validate() error {
	o := c.UniverseOptions(nil)
	if err := o.Validate(); err != nil {
		return err
	}
	if _, err := universe.NewEngine(&o); err != nil {
		return err
	}
	if math.IsNaN(c.Density) || c.Density < 0 || c.Density > 1 {
		return errors.Wrapf(universe.ErrInvalidArgument, "[Config.Validate] density %v outside [0, 1]", c.Density)
	}
	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		return errors.Wrapf(universe.ErrInvalidArgument, "[Config.Validate] unknown log level %q", c.LogLevel)
	}
	return nil
}

// UniverseOptions converts the config to the universe options
func (c Config) UniverseOptions(logger log.Logger) universe.Options {
	return universe.Options{
		Width:        c.Width,
		Height:       c.Height,
		Interval:     c.Interval,
		MaxSteps:     c.MaxSteps,
		HaltOnStable: c.HaltOnStable,
		Engine:       c.Engine,
		Workers:      c.Workers,
		Logger:       logger,
	}
}

// Logger builds the logfmt logger writing to w and filtered by LogLevel
func (c Config) Logger(w io.Writer) log.Logger {
	opt, ok := logLevels[strings.ToLower(c.LogLevel)]
	if !ok {
		opt = logLevels[DefLogLevel]
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, opt)
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}
