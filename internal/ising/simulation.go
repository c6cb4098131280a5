package ising

import (
	"log"
	"time"

	"ising/internal/core"
	"ising/internal/render"
)

// Scheduler task names.
const (
	TaskSim    = "sim"
	TaskRamp   = "ramp"
	TaskRender = "render"
)

// Option customises a Simulation.
type Option func(*Simulation)

// WithRNG injects the random source used for seeding and sampling.
func WithRNG(rng *core.RNG) Option {
	return func(s *Simulation) { s.rng = rng }
}

// WithLogger routes lifecycle logging to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) { s.logger = l }
}

// Simulation owns one lattice, its parameter block and the components that
// operate on them, plus a scheduler wiring the periodic tasks together.
type Simulation struct {
	cfg     Config
	state   *State
	pattern Pattern
	rng     *core.RNG
	logger  *log.Logger

	engine *Engine
	brush  *Brush
	ramp   *Ramp
	bridge *Bridge
	sched  *core.Scheduler
}

// New builds a simulation and fills the lattice with the configured pattern.
func New(cfg Config, opts ...Option) (*Simulation, error) {
	if cfg.Pattern == "" {
		cfg.Pattern = PatternRandom
	}
	pattern, err := LookupPattern(cfg.Pattern)
	if err != nil {
		return nil, err
	}
	lattice, err := core.NewLattice(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	s := &Simulation{cfg: cfg, pattern: pattern}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.rng == nil {
		s.rng = core.NewRNG(cfg.Seed)
	}
	s.state = NewState(lattice, NewParams(cfg), s.rng)
	s.pattern(lattice, s.rng, cfg.Seed)

	s.engine = NewEngine(s.state)
	s.brush = NewBrush(s.state)
	s.ramp = NewRamp(s.state)
	s.ramp.OnStop(func(final float64) {
		s.logger.Printf("ising: temperature ramp finished at T=%.2f", final)
	})

	s.sched = core.NewScheduler()
	interval := cfg.SimInterval
	if interval <= 0 {
		interval = DefaultSimInterval
	}
	simClock := s.sched.Every(TaskSim, interval, s.engine)
	simClock.SetMaxSteps(cfg.MaxSimSteps)
	s.sched.Every(TaskRamp, RampInterval, s.ramp)
	return s, nil
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "ising" }

// Size returns the lattice dimensions.
func (s *Simulation) Size() core.Size { return s.state.Lattice.Size() }

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config { return s.cfg }

// State exposes the shared context.
func (s *Simulation) State() *State { return s.state }

// Lattice exposes the spin lattice.
func (s *Simulation) Lattice() *core.Lattice { return s.state.Lattice }

// Params exposes the shared parameter block.
func (s *Simulation) Params() *Params { return s.state.Params }

// Engine exposes the Metropolis engine.
func (s *Simulation) Engine() *Engine { return s.engine }

// Brush exposes the disk brush.
func (s *Simulation) Brush() *Brush { return s.brush }

// Ramp exposes the temperature ramp.
func (s *Simulation) Ramp() *Ramp { return s.ramp }

// Bridge returns the attached render bridge, if any.
func (s *Simulation) Bridge() *Bridge { return s.bridge }

// Scheduler exposes the task scheduler.
func (s *Simulation) Scheduler() *core.Scheduler { return s.sched }

// Step runs one simulation tick regardless of the scheduler clock.
func (s *Simulation) Step() { s.engine.Advance() }

// Stamp paints a brush disk at lattice coordinates (x, y).
func (s *Simulation) Stamp(x, y float64) { s.brush.Stamp(x, y) }

// Heat starts an upward temperature ramp.
func (s *Simulation) Heat() bool { return s.startRamp(Heat) }

// Cool starts a downward temperature ramp.
func (s *Simulation) Cool() bool { return s.startRamp(Cool) }

func (s *Simulation) startRamp(dir Direction) bool {
	if !s.ramp.Start(dir) {
		return false
	}
	s.logger.Printf("ising: temperature ramp started from T=%.2f (direction %+d)", s.ramp.Cursor(), dir)
	return true
}

// Tick advances every scheduled task by delta of wall or virtual time.
func (s *Simulation) Tick(delta time.Duration) int { return s.sched.Tick(delta) }

// AttachRenderer connects backend through a Bridge. A positive interval also
// schedules the bridge as the render task; otherwise the caller drives it.
func (s *Simulation) AttachRenderer(backend render.Backend, interval time.Duration) *Bridge {
	s.bridge = NewBridge(s.state.Lattice, backend, s.logger)
	if interval > 0 {
		s.sched.Every(TaskRender, interval, s.bridge)
	}
	return s.bridge
}

// Reset reseeds the random source and reapplies the initial pattern. A zero
// seed reuses the configured seed. Parameters and any running ramp are kept.
func (s *Simulation) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	*s.rng = *core.NewRNG(effective)
	s.pattern(s.state.Lattice, s.rng, effective)
	s.engine.ResetStats()
}
