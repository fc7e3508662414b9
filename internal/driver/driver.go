// Package driver sequences seeding, generation and automaton ticks over a
// single grid. It owns the grid and the configuration; the engines only
// borrow them for the duration of a call.
package driver

import (
	"io"
	"log"
	"time"

	"weighted-ca/internal/core"
	"weighted-ca/internal/seed"
	"weighted-ca/internal/transition"
)

// Option customises a Driver at construction.
type Option func(*Driver)

// WithLogger sends one line per generation to l.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) { d.SetLogger(l) }
}

// WithSource replaces the seed-derived random source. Reset keeps using src.
func WithSource(src core.Source) Option {
	return func(d *Driver) {
		if src != nil {
			d.src = src
			d.fixedSource = true
		}
	}
}

// Driver maps external triggers onto engine calls. It is not safe for
// concurrent use.
type Driver struct {
	name string
	cfg  Config
	grid *core.Grid

	src         core.Source
	fixedSource bool
	generation  int

	logger *log.Logger
}

// New validates cfg and returns a driver holding an all-dead grid. Call
// Generate or Reset to seed it.
func New(name string, cfg Config, opts ...Option) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Weighted = cfg.Weighted.Clone()
	d := &Driver{
		name:   name,
		cfg:    cfg,
		grid:   core.NewGrid(cfg.Size),
		src:    core.NewRNG(cfg.Seed),
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// SetLogger replaces the generation logger. A nil logger silences it.
func (d *Driver) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	d.logger = l
}

// Name returns the simulation identifier.
func (d *Driver) Name() string { return d.name }

// Size reports the grid dimensions.
func (d *Driver) Size() core.Size { return d.grid.Size() }

// Cells exposes the grid in row-major order for rendering.
func (d *Driver) Cells() []uint8 { return d.grid.Cells() }

// Grid exposes the owned grid for read access.
func (d *Driver) Grid() *core.Grid { return d.grid }

// Config returns a copy of the current configuration.
func (d *Driver) Config() Config {
	cfg := d.cfg
	cfg.Weighted = d.cfg.Weighted.Clone()
	return cfg
}

// Generation counts automaton ticks since the last Generate.
func (d *Driver) Generation() int { return d.generation }

// Rule returns the automaton rule.
func (d *Driver) Rule() transition.Rule { return d.cfg.Rule }

// SetRule changes the automaton rule used by Tick.
func (d *Driver) SetRule(r transition.Rule) { d.cfg.Rule = r }

// Automaton reports whether Step advances the grid.
func (d *Driver) Automaton() bool { return d.cfg.Automaton }

// SetAutomaton enables or disables automaton ticks from Step.
func (d *Driver) SetAutomaton(on bool) { d.cfg.Automaton = on }

// TickInterval returns the time between automaton ticks.
func (d *Driver) TickInterval() time.Duration { return d.cfg.TickInterval }

// Generate seeds the grid and then runs the configured weighted iterations.
func (d *Driver) Generate() {
	seed.Fill(d.grid, d.cfg.FillProbability, d.src)
	transition.Apply(d.grid, transition.RuleWeighted, d.cfg.Weighted)
	d.generation = 0
	d.logger.Printf("generate %s n=%d seed=%d fill=%d iterations=%d population=%d",
		d.name, d.grid.Len(), d.cfg.Seed, d.cfg.FillProbability, d.cfg.Weighted.Iterations, d.grid.Population())
}

// Reset reseeds the random source (unless one was injected) and regenerates.
func (d *Driver) Reset(seed int64) {
	d.cfg.Seed = seed
	if !d.fixedSource {
		d.src = core.NewRNG(seed)
	}
	d.Generate()
}

// Tick advances the grid by one application of the automaton rule.
func (d *Driver) Tick() {
	transition.Tick(d.grid, d.cfg.Rule, d.cfg.Weighted)
	d.generation++
}

// Step ticks the grid when the automaton is enabled.
func (d *Driver) Step() {
	if !d.cfg.Automaton {
		return
	}
	d.Tick()
}

// Resize replaces the grid with one of dimension n and regenerates it.
func (d *Driver) Resize(n int) error {
	cfg := d.cfg
	cfg.Size = n
	if err := cfg.Validate(); err != nil {
		return err
	}
	d.cfg.Size = n
	d.grid = core.NewGrid(n)
	d.Generate()
	return nil
}

func init() {
	register := func(name string, rule transition.Rule, automaton bool) {
		core.Register(name, func(m map[string]string) core.Sim {
			cfg := FromMap(m)
			if _, ok := m["rule"]; !ok {
				cfg.Rule = rule
			}
			if _, ok := m["automaton"]; !ok {
				cfg.Automaton = automaton
			}
			d, err := New(name, cfg)
			if err != nil {
				panic(err)
			}
			return d
		})
	}
	register("cave", transition.RuleLife, false)
	register("life", transition.RuleLife, true)
	register("hat", transition.RuleHat, true)
	register("weighted", transition.RuleWeighted, true)
}
