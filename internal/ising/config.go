package ising

import (
	"strconv"
	"time"
)

// Default timings for the periodic tasks.
const (
	DefaultSimInterval    = time.Millisecond
	DefaultRenderInterval = time.Second / 60
	DefaultMaxSimSteps    = 4
)

// Config controls lattice dimensions, seeding and the initial parameter block.
type Config struct {
	Width  int
	Height int

	Seed    int64
	Pattern string

	Temperature float64
	Radius      int
	InvertDraw  bool
	Paused      bool

	SimInterval time.Duration
	MaxSimSteps int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       400,
		Height:      300,
		Seed:        1,
		Pattern:     PatternRandom,
		Temperature: 5,
		Radius:      10,
		SimInterval: DefaultSimInterval,
		MaxSimSteps: DefaultMaxSimSteps,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["init"]; ok && v != "" {
		c.Pattern = v
	}
	if v, ok := cfg["t"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Temperature = parsed
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Radius = parsed
		}
	}
	if v, ok := cfg["invert"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.InvertDraw = parsed
		}
	}
	if v, ok := cfg["paused"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Paused = parsed
		}
	}
	if v, ok := cfg["sim_interval"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.SimInterval = parsed
		}
	}
	if v, ok := cfg["max_sim_steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxSimSteps = parsed
		}
	}
	return c
}
