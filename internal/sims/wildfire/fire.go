package wildfire

import (
	"fmt"
	"math"

	"burnscar/internal/core"
)

// FireEvent describes a single fire applied to a field.
type FireEvent struct {
	// Step and Time are filled in by World; generators leave them zero.
	Step int
	Time float64

	Center   int
	X, Y     float64
	Radius   float64
	Affected int
}

// FireGenerator seeds fires as a Poisson process in time. Each fire boosts
// erodibility of every node within an exponentially distributed radius of a
// uniformly chosen node.
type FireGenerator struct {
	frequency  float64
	meanRadius float64
	boost      float64
	timestep   float64

	scratch []int
}

// NewFireGenerator validates the rate and timestep. The mean radius is only
// checked when a fire is attempted, so a generator with zero frequency
// accepts any radius.
func NewFireGenerator(frequency, meanRadius, boost, timestep float64) (*FireGenerator, error) {
	if !(frequency >= 0) {
		return nil, fmt.Errorf("fire frequency %v: %w", frequency, core.ErrInvalidParameter)
	}
	g := &FireGenerator{frequency: frequency, meanRadius: meanRadius, boost: boost}
	if err := g.SetTimestep(timestep); err != nil {
		return nil, err
	}
	return g, nil
}

// Frequency returns the expected number of fires per unit time.
func (g *FireGenerator) Frequency() float64 { return g.frequency }

// MeanRadius returns the mean of the fire radius distribution.
func (g *FireGenerator) MeanRadius() float64 { return g.meanRadius }

// Boost returns the erodibility added to burned nodes.
func (g *FireGenerator) Boost() float64 { return g.boost }

// Timestep returns the interval the occurrence probability is evaluated over.
func (g *FireGenerator) Timestep() float64 { return g.timestep }

// SetTimestep tracks the caller's current step size.
func (g *FireGenerator) SetTimestep(dt float64) error {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return fmt.Errorf("fire timestep %v: %w", dt, core.ErrInvalidParameter)
	}
	g.timestep = dt
	return nil
}

// NoFireProbability returns the probability that a call to MaybeIgnite
// leaves the field unchanged.
func (g *FireGenerator) NoFireProbability() float64 {
	if g.frequency == 0 {
		return 1
	}
	return math.Exp(-g.timestep * g.frequency)
}

// MaybeIgnite applies zero or one fire to field. It returns nil when no fire
// occurred during this timestep.
func (g *FireGenerator) MaybeIgnite(field []float64, grid core.Grid, rng core.Source) (*FireEvent, error) {
	n := grid.NodeCount()
	if len(field) == 0 || n == 0 {
		return nil, core.ErrEmptyField
	}
	if len(field) != n {
		return nil, fmt.Errorf("field has %d nodes, grid has %d: %w", len(field), n, core.ErrInvalidParameter)
	}

	if rng.Float64() < g.NoFireProbability() {
		return nil, nil
	}

	if !(g.meanRadius > 0) {
		return nil, fmt.Errorf("mean fire radius %v: %w", g.meanRadius, core.ErrInvalidParameter)
	}
	center := rng.IntN(n)
	radius := rng.ExpFloat64() * g.meanRadius

	ev, err := g.Ignite(field, grid, center, radius)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// Ignite burns every node of grid closer than radius to node center, adding
// the boost to field. Nothing is modified when an error is returned.
func (g *FireGenerator) Ignite(field []float64, grid core.Grid, center int, radius float64) (FireEvent, error) {
	n := grid.NodeCount()
	if len(field) == 0 || n == 0 {
		return FireEvent{}, core.ErrEmptyField
	}
	if len(field) != n {
		return FireEvent{}, fmt.Errorf("field has %d nodes, grid has %d: %w", len(field), n, core.ErrInvalidParameter)
	}
	if center < 0 || center >= n {
		return FireEvent{}, fmt.Errorf("fire center %d outside [0,%d): %w", center, n, core.ErrInvalidParameter)
	}
	if !(radius >= 0) {
		return FireEvent{}, fmt.Errorf("fire radius %v: %w", radius, core.ErrInvalidParameter)
	}

	x, y := grid.NodeXY(center)
	g.scratch = core.NodesWithin(grid, x, y, radius, g.scratch[:0])
	for _, node := range g.scratch {
		field[node] += g.boost
	}

	return FireEvent{
		Center:   center,
		X:        x,
		Y:        y,
		Radius:   radius,
		Affected: len(g.scratch),
	}, nil
}
