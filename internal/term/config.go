package term

import (
	"flag"
	"fmt"

	"lifeboard/internal/core"
	"lifeboard/internal/session"
)

// Config represents the command-line parameters for the terminal front end.
type Config struct {
	Rows    int
	Cols    int
	Speed   int
	Seed    int64
	Density float64
}

// NewConfig returns a Config that fits the board to the terminal.
func NewConfig() *Config {
	return &Config{Speed: core.DefaultSpeed, Seed: 42, Density: 0.25}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows (0 fits the terminal)")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns (0 fits the terminal)")
	fs.IntVar(&c.Speed, "speed", c.Speed, "initial generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the randomize key")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability for the randomize key")
}

// NewSession builds a session whose board fits a w*h terminal unless the
// dimensions were given explicitly.
func (c *Config) NewSession(w, h int) (*session.Session, error) {
	layout := Layout()
	rows, cols := layout.BoardSize(w, h)
	if c.Rows != 0 {
		rows = c.Rows
	}
	if c.Cols != 0 {
		cols = c.Cols
	}
	grid, err := core.NewGrid(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("term: %dx%d terminal: %w", w, h, err)
	}
	return session.New(grid, session.Config{
		Speed:   c.Speed,
		Layout:  layout,
		Seed:    c.Seed,
		Density: c.Density,
	})
}
