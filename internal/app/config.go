package app

import (
	"flag"
	"time"

	"ising/internal/ising"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64

	Temperature float64
	Radius      int
	Pattern     string

	HUDWidth int
	Headless bool
	Ticks    int
	Report   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := ising.DefaultConfig()
	return &Config{
		Width:       def.Width,
		Height:      def.Height,
		Scale:       2,
		TPS:         60,
		Seed:        def.Seed,
		Temperature: def.Temperature,
		Radius:      def.Radius,
		Pattern:     def.Pattern,
		HUDWidth:    220,
		Ticks:       1000,
		Report:      100,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "lattice width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "lattice height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixels per lattice cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second of the host loop")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the lattice and sampler (0 = time based)")
	fs.Float64Var(&c.Temperature, "t", c.Temperature, "initial temperature")
	fs.IntVar(&c.Radius, "radius", c.Radius, "initial brush radius in cells")
	fs.StringVar(&c.Pattern, "init", c.Pattern, "initial lattice pattern (random, up, down, noise)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "run without a window")
	fs.IntVar(&c.Ticks, "ticks", c.Ticks, "simulation ticks to run in headless mode")
	fs.IntVar(&c.Report, "report", c.Report, "headless ticks between log lines (0 = only at the end)")
}

// Simulation converts the flags into a simulation config.
func (c *Config) Simulation() ising.Config {
	cfg := ising.DefaultConfig()
	cfg.Width = c.Width
	cfg.Height = c.Height
	cfg.Seed = c.Seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.Temperature = c.Temperature
	if c.Radius >= 1 {
		cfg.Radius = c.Radius
	}
	if c.Pattern != "" {
		cfg.Pattern = c.Pattern
	}
	return cfg
}
