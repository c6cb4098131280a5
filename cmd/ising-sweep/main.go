package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"runtime"
	"sort"
	"sync"
	"time"

	"ising/internal/ising"
)

type sweepPoint struct {
	index       int
	temperature float64
}

type sweepResult struct {
	temperature float64
	absMag      float64
	energy      float64
	acceptance  float64
	err         error
}

func main() {
	width := flag.Int("w", 64, "lattice width")
	height := flag.Int("h", 64, "lattice height")
	tMin := flag.Float64("tmin", 0.5, "lowest temperature")
	tMax := flag.Float64("tmax", 5.0, "highest temperature")
	tStep := flag.Float64("tstep", 0.25, "temperature increment")
	warmup := flag.Int("warmup", 400, "ticks discarded before measuring")
	ticks := flag.Int("ticks", 400, "ticks averaged per temperature")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1337, "base seed; each temperature adds its index")
	pattern := flag.String("init", ising.PatternUp, "initial lattice pattern")
	flag.Parse()

	if *tStep <= 0 || *tMax < *tMin {
		log.Fatalf("invalid temperature range [%g, %g] step %g", *tMin, *tMax, *tStep)
	}
	if *workers < 1 {
		*workers = 1
	}

	var points []sweepPoint
	for i := 0; ; i++ {
		t := *tMin + float64(i)*(*tStep)
		if t > *tMax+1e-9 {
			break
		}
		points = append(points, sweepPoint{index: i, temperature: math.Round(t*100) / 100})
	}

	base := ising.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.Pattern = *pattern

	fmt.Printf("Sweeping %d temperatures on %dx%d (%d workers, %d+%d ticks)\n",
		len(points), *width, *height, *workers, *warmup, *ticks)

	jobs := make(chan sweepPoint)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				results <- runPoint(base, p, *seed, *warmup, *ticks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, p := range points {
			jobs <- p
		}
		close(jobs)
	}()

	start := time.Now()
	var all []sweepResult
	for res := range results {
		if res.err != nil {
			log.Fatalf("T=%.2f: %v", res.temperature, res.err)
		}
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].temperature < all[j].temperature })

	fmt.Printf("\n%6s %8s %9s %8s\n", "T", "|M|", "E", "accept")
	for _, res := range all {
		fmt.Printf("%6.2f %8.4f %9.4f %8.4f\n", res.temperature, res.absMag, res.energy, res.acceptance)
	}
	fmt.Printf("\nelapsed %s\n", time.Since(start).Round(time.Millisecond))
}

// runPoint owns its own Simulation, so workers never share lattice state.
func runPoint(base ising.Config, p sweepPoint, seed int64, warmup, ticks int) sweepResult {
	cfg := base
	cfg.Temperature = p.temperature
	cfg.Seed = seed + int64(p.index)
	sim, err := ising.New(cfg, ising.WithLogger(log.New(io.Discard, "", 0)))
	if err != nil {
		return sweepResult{temperature: p.temperature, err: err}
	}
	for i := 0; i < warmup; i++ {
		sim.Step()
	}
	sim.Engine().ResetStats()

	var magSum, energySum float64
	for i := 0; i < ticks; i++ {
		sim.Step()
		magSum += math.Abs(ising.Magnetization(sim.Lattice()))
		energySum += ising.Energy(sim.Lattice())
	}
	res := sweepResult{temperature: p.temperature}
	if ticks > 0 {
		res.absMag = magSum / float64(ticks)
		res.energy = energySum / float64(ticks)
	}
	if stats := sim.Engine().Stats(); stats.Trials > 0 {
		res.acceptance = float64(stats.Accepted) / float64(stats.Trials)
	}
	return res
}
