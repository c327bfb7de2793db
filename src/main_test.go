package main

import (
	"testing"

	"github.com/pkg/errors"

	"simlife/src/config"
	"simlife/src/universe"
)

func TestConfigPath(t *testing.T) {
	cases := map[string][]string{
		"":          {"-x", "10"},
		"a.json":    {"-c", "a.json", "-x", "10"},
		"b.json":    {"-n", "--config", "b.json"},
		"c.json":    {"--config=c.json"},
		"d.json":    {"-r", "-c=d.json"},
		"last.json": {"-x", "3", "-c", "last.json"},
	}
	for exp, args := range cases {
		if got := configPath(args); got != exp {
			t.Fatalf("configPath(%v) = %q, expected %q", args, got, exp)
		}
	}
	if got := configPath([]string{"-c"}); got != "" {
		t.Fatalf("configPath without value = %q", got)
	}
}

func TestSettleCentered(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Width, cfg.Height = 11, 9
	o := cfg.UniverseOptions(nil)
	u, err := universe.New(&o)
	if err != nil {
		t.Fatalf("New: %+v", err)
	}
	if err := settleCentered(u, "blinker"); err != nil {
		t.Fatalf("settleCentered: %+v", err)
	}
	for _, x := range []int{4, 5, 6} {
		if alive, _ := u.Get(x, 4); !alive {
			t.Fatalf("cell (%v,4) is dead:\n%v", x, u.Snapshot())
		}
	}
	if err := settleCentered(u, "nope"); !errors.Is(err, universe.ErrUnknownTemplate) {
		t.Fatalf("err = %v", err)
	}
}

func TestTemplateOrigin(t *testing.T) {
	tmpl := universe.Template{Name: "l", Coordinates: [][]int{{0, 0}, {3, 1}}}
	if x, y := templateOrigin(tmpl, 10, 10); x != 3 || y != 4 {
		t.Fatalf("origin = %v, %v", x, y)
	}
	if x, y := templateOrigin(tmpl, 2, 1); x != 0 || y != 0 {
		t.Fatalf("origin = %v, %v on the small field", x, y)
	}
}

func TestNewLogger(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Interactive = true
	logger, closeLog, err := newLogger(cfg)
	if err != nil || logger == nil {
		t.Fatalf("newLogger: %v", err)
	}
	closeLog()

	cfg.LogFile = t.TempDir() + "/simlife.log"
	logger, closeLog, err = newLogger(cfg)
	if err != nil {
		t.Fatalf("newLogger: %+v", err)
	}
	if err := logger.Log("msg", "hello"); err != nil {
		t.Fatalf("Log: %v", err)
	}
	closeLog()
}
