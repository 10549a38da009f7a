package app

import (
	"flag"
	"fmt"

	"lifeboard/internal/core"
	"lifeboard/internal/session"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Cell    int
	Gap     int
	Speed   int
	Seed    int64
	Density float64
	Muted   bool
	Volume  float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:   700,
		Height:  750,
		Cell:    20,
		Gap:     50,
		Speed:   core.DefaultSpeed,
		Seed:    42,
		Density: 0.25,
		Volume:  1.0,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.Cell, "cell", c.Cell, "cell size in pixels")
	fs.IntVar(&c.Gap, "gap", c.Gap, "height of the control strip in pixels")
	fs.IntVar(&c.Speed, "speed", c.Speed, "initial generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the randomize key")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability for the randomize key")
	fs.BoolVar(&c.Muted, "muted", c.Muted, "start with audio muted")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "background loop volume (0-1)")
}

// Layout returns the window layout for this configuration.
func (c *Config) Layout() session.Layout {
	return session.DefaultLayout(c.Cell, c.Gap)
}

// BoardSize returns the rows and columns that fit the window.
func (c *Config) BoardSize() (rows, cols int) {
	return c.Layout().BoardSize(c.Width, c.Height)
}

// Validate reports the first setting that cannot produce a board.
func (c *Config) Validate() error {
	switch {
	case c.Cell <= 0:
		return &core.ConfigurationError{Field: "cell", Value: c.Cell}
	case c.Gap < 0:
		return &core.ConfigurationError{Field: "gap", Value: c.Gap}
	case c.Speed < core.MinSpeed || c.Speed > core.MaxSpeed:
		return &core.ConfigurationError{Field: "speed", Value: c.Speed}
	}
	rows, cols := c.BoardSize()
	if rows <= 0 {
		return &core.ConfigurationError{Field: "rows", Value: rows}
	}
	if cols <= 0 {
		return &core.ConfigurationError{Field: "cols", Value: cols}
	}
	return nil
}

// NewSession validates the configuration and builds an empty board session.
func (c *Config) NewSession(audio session.Audio) (*session.Session, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	rows, cols := c.BoardSize()
	grid, err := core.NewGrid(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("app: board: %w", err)
	}
	return session.New(grid, session.Config{
		Speed:   c.Speed,
		Muted:   c.Muted,
		Layout:  c.Layout(),
		Audio:   audio,
		Seed:    c.Seed,
		Density: c.Density,
	})
}
