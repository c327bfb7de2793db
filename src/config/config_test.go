package config

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"simlife/src/universe"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(name, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return name
}

func TestLoad(t *testing.T) {
	name := writeFile(t, `{
		"width": 50,
		"height": 40,
		"interval": "150ms",
		"engine": "multithreaded",
		"workers": 2,
		"halt_on_stable": true,
		"log_level": "debug"
	}`)
	c, err := Load(name)
	if err != nil {
		t.Fatalf("Load: %+v", err)
	}
	if c.Width != 50 || c.Height != 40 || c.Interval != 150*time.Millisecond {
		t.Fatalf("config %+v", c)
	}
	if c.Engine != "multithreaded" || c.Workers != 2 || !c.HaltOnStable {
		t.Fatalf("config %+v", c)
	}
	//not in the file, stays default
	if c.MaxSteps != DefMaxSteps || c.Template != DefTemplate {
		t.Fatalf("config %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %+v", err)
	}

	o := c.UniverseOptions(nil)
	if o.Width != 50 || o.Height != 40 || o.Interval != 150*time.Millisecond || o.Engine != "multithreaded" || !o.HaltOnStable {
		t.Fatalf("options %+v", o)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil || !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("missing file err = %v", err)
	}
	if _, err := Load(writeFile(t, `{"width": `)); err == nil || !strings.Contains(err.Error(), "unmarshal") {
		t.Fatalf("bad json err = %v", err)
	}
	if _, err := Load(writeFile(t, `{"interval": "fast"}`)); err == nil {
		t.Fatalf("bad interval accepted")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("defaults: %+v", err)
	}
	cases := map[string]func(c *Config){
		"width":     func(c *Config) { c.Width = 0 },
		"height":    func(c *Config) { c.Height = -1 },
		"interval":  func(c *Config) { c.Interval = -time.Second },
		"engine":    func(c *Config) { c.Engine = "gpu" },
		"density":   func(c *Config) { c.Density = 2 },
		"NaN":       func(c *Config) { c.Density = math.NaN() },
		"log level": func(c *Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range cases {
		c := DefaultConfig()
		mutate(&c)
		if err := c.Validate(); !errors.Is(err, universe.ErrInvalidArgument) {
			t.Fatalf("%v: err = %v", name, err)
		}
	}
}

func TestLogger(t *testing.T) {
	var b bytes.Buffer
	c := DefaultConfig()
	c.LogLevel = "warn"
	logger := c.Logger(&b)
	_ = level.Info(logger).Log("msg", "hidden")
	_ = level.Warn(logger).Log("msg", "shown", "gen", 3)
	out := b.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info passed the warn filter: %q", out)
	}
	if !strings.Contains(out, "level=warn") || !strings.Contains(out, "msg=shown") || !strings.Contains(out, "gen=3") {
		t.Fatalf("log line %q", out)
	}
}
