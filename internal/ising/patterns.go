package ising

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aquilax/go-perlin"

	"ising/internal/core"
)

// Built-in initial patterns.
const (
	PatternRandom = "random"
	PatternUp     = "up"
	PatternDown   = "down"
	PatternNoise  = "noise"
)

// ErrUnknownPattern is returned for an unregistered pattern name.
var ErrUnknownPattern = errors.New("ising: unknown initial pattern")

// Pattern fills a lattice with an initial spin configuration.
type Pattern func(l *core.Lattice, rng *core.RNG, seed int64)

var patterns = map[string]Pattern{}

// RegisterPattern adds an initial pattern under the provided name.
func RegisterPattern(name string, p Pattern) {
	if name == "" || p == nil {
		return
	}
	patterns[name] = p
}

// Patterns lists the registered pattern names in sorted order.
func Patterns() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPattern returns the named pattern.
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// noiseScale is the Perlin feature size in cells.
const noiseScale = 24.0

func noisePattern(l *core.Lattice, _ *core.RNG, seed int64) {
	p := perlin.NewPerlin(2, 2, 3, seed)
	size := l.Size()
	cells := l.Cells()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			v := p.Noise2D(float64(x)/noiseScale, float64(y)/noiseScale)
			if v < 0 {
				cells[l.Index(x, y)] = core.SpinDown
			} else {
				cells[l.Index(x, y)] = core.SpinUp
			}
		}
	}
}

func init() {
	RegisterPattern(PatternRandom, func(l *core.Lattice, rng *core.RNG, _ int64) {
		core.FillSpins(rng, l)
	})
	RegisterPattern(PatternUp, func(l *core.Lattice, _ *core.RNG, _ int64) {
		l.Fill(core.SpinUp)
	})
	RegisterPattern(PatternDown, func(l *core.Lattice, _ *core.RNG, _ int64) {
		l.Fill(core.SpinDown)
	})
	RegisterPattern(PatternNoise, noisePattern)
}
