package wildfire

import (
	"fmt"

	"burnscar/internal/core"
	pcore "burnscar/pkg/core"
)

// EventRecorder receives every fire applied by a World.
type EventRecorder interface {
	RecordFire(FireEvent)
}

var (
	_ core.Model                = (*World)(nil)
	_ core.FloatParameterSetter = (*World)(nil)
)

// World wires a decay stepper and a fire generator over a raster grid and
// owns the erodibility field they share.
type World struct {
	cfg Config

	grid  *core.RasterGrid
	field []float64

	decay *DecayStepper
	fire  *FireGenerator
	clock *core.Clock

	events   []FireEvent
	recorder EventRecorder

	rng *pcore.RNG
}

// New returns a wildfire World with the provided dimensions using defaults.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World configured from the provided options. The
// field starts at the baseline erodibility.
func NewWithConfig(cfg Config) (*World, error) {
	p := cfg.Params
	decay, err := NewDecayStepper(p.DecayTime, p.Baseline, p.DecayScheme)
	if err != nil {
		return nil, err
	}
	fire, err := NewFireGenerator(p.FireFrequency, p.MeanFireRadius, p.Boost, p.Timestep)
	if err != nil {
		return nil, err
	}
	clock, err := core.NewClock(p.Timestep)
	if err != nil {
		return nil, err
	}
	switch p.StepOrder {
	case "":
		cfg.Params.StepOrder = DecayFirst
	case DecayFirst, FireFirst:
	default:
		return nil, fmt.Errorf("step order %q: %w", p.StepOrder, core.ErrInvalidParameter)
	}

	cfg.Params.DecayScheme = decay.Scheme()

	grid := core.NewRasterGrid(cfg.Width, cfg.Height, cfg.Spacing)
	if grid.NodeCount() == 0 {
		return nil, core.ErrEmptyField
	}

	return &World{
		cfg:   cfg,
		grid:  grid,
		field: core.NewUniformField(grid.NodeCount(), p.Baseline),
		decay: decay,
		fire:  fire,
		clock: clock,
		rng:   pcore.NewRNG(cfg.Seed),
	}, nil
}

// Name returns the model identifier.
func (w *World) Name() string { return "wildfire" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.grid.Size() }

// Grid exposes the raster grid the field is attached to.
func (w *World) Grid() *core.RasterGrid { return w.grid }

// Field exposes the erodibility field. Callers may modify it between steps.
func (w *World) Field() []float64 { return w.field }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Time returns the simulated time since the last Reset.
func (w *World) Time() float64 { return w.clock.Elapsed() }

// Steps returns the number of completed steps since the last Reset.
func (w *World) Steps() int { return w.clock.Ticks() }

// Events returns the fires applied since the last Reset.
func (w *World) Events() []FireEvent { return w.events }

// SetRecorder installs a recorder notified of every fire. Nil disables it.
func (w *World) SetRecorder(r EventRecorder) { w.recorder = r }

// SetTimestep changes the step size for both the clock and the fire
// occurrence probability.
// A rejected dt leaves the world unchanged.
func (w *World) SetTimestep(dt float64) error {
	prev := w.clock.Step()
	if err := w.clock.SetStep(dt); err != nil {
		return err
	}
	if err := w.fire.SetTimestep(dt); err != nil {
		w.clock.SetStep(prev)
		return err
	}
	w.cfg.Params.Timestep = dt
	return nil
}

// Reset restores the field to baseline and reseeds the random stream. A zero
// seed reuses the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = pcore.NewRNG(effective)
	baseline := w.decay.Baseline()
	for i := range w.field {
		w.field[i] = baseline
	}
	w.events = w.events[:0]
	w.clock.Reset()
}

// Step relaxes the field and tests for a fire once, in the configured order.
func (w *World) Step() error {
	dt := w.clock.Step()
	step := w.clock.Ticks() + 1

	if w.cfg.Params.StepOrder == FireFirst {
		if err := w.ignite(step); err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
		if err := w.decay.Apply(w.field, dt); err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
	} else {
		if err := w.decay.Apply(w.field, dt); err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
		if err := w.ignite(step); err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
	}

	w.clock.Advance()
	return nil
}

func (w *World) ignite(step int) error {
	ev, err := w.fire.MaybeIgnite(w.field, w.grid, w.rng)
	if err != nil || ev == nil {
		return err
	}
	ev.Step = step
	ev.Time = w.clock.Elapsed() + w.clock.Step()
	w.events = append(w.events, *ev)
	if w.recorder != nil {
		w.recorder.RecordFire(*ev)
	}
	return nil
}

func init() {
	core.Register("wildfire", func(cfg map[string]string) (core.Model, error) {
		w, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return w, nil
	})
}
