package app

import (
	"errors"
	"flag"
	"testing"

	"lifeboard/internal/core"
	"lifeboard/internal/session"
)

func TestDefaultBoardSize(t *testing.T) {
	cfg := NewConfig()
	rows, cols := cfg.BoardSize()
	if rows != 35 || cols != 35 {
		t.Fatalf("default board %dx%d, expected 35x35", rows, cols)
	}
	sess, err := cfg.NewSession(nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if sess.State() != session.Editing || sess.Speed() != 10 {
		t.Fatalf("session starts %v at speed %d", sess.State(), sess.Speed())
	}
	if sess.Grid().Rows() != 35 || sess.Grid().Cols() != 35 {
		t.Fatal("session grid does not match the window")
	}
}

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-width", "400", "-height", "250", "-cell", "10", "-speed", "5", "-muted"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rows, cols := cfg.BoardSize()
	if rows != 20 || cols != 40 {
		t.Fatalf("board %dx%d, expected 20x40", rows, cols)
	}
	sess, err := cfg.NewSession(nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if !sess.Muted() || sess.Speed() != 5 {
		t.Fatal("flags not carried into the session")
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cases := map[string]func(*Config){
		"cell":   func(c *Config) { c.Cell = 0 },
		"gap":    func(c *Config) { c.Gap = -1 },
		"speed":  func(c *Config) { c.Speed = 31 },
		"rows":   func(c *Config) { c.Height = c.Gap },
		"cols":   func(c *Config) { c.Width = 5 },
		"slow":   func(c *Config) { c.Speed = 0 },
		"height": func(c *Config) { c.Height = 10 },
	}
	for name, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		_, err := cfg.NewSession(nil)
		var cfgErr *core.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("%s: expected ConfigurationError, got %v", name, err)
		}
	}
}
