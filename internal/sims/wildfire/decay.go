package wildfire

import (
	"fmt"
	"math"

	"burnscar/internal/core"
)

// DecayScheme selects how DecayStepper integrates the relaxation.
type DecayScheme string

const (
	// DecayExact applies the closed-form exponential solution. It never
	// overshoots the baseline regardless of dt.
	DecayExact DecayScheme = "exact"
	// DecayEuler applies a single forward Euler step. It overshoots once
	// dt exceeds the decay time and diverges past twice the decay time.
	DecayEuler DecayScheme = "euler"
)

// DecayStepper relaxes erodibility toward a baseline following
// dK/dt = -(K - K0) / decayTime.
type DecayStepper struct {
	decayTime float64
	baseline  float64
	scheme    DecayScheme
}

// NewDecayStepper validates the time constant and scheme. An empty scheme
// selects DecayExact.
func NewDecayStepper(decayTime, baseline float64, scheme DecayScheme) (*DecayStepper, error) {
	if !(decayTime > 0) {
		return nil, fmt.Errorf("decay time %v: %w", decayTime, core.ErrInvalidParameter)
	}
	switch scheme {
	case "":
		scheme = DecayExact
	case DecayExact, DecayEuler:
	default:
		return nil, fmt.Errorf("decay scheme %q: %w", scheme, core.ErrInvalidParameter)
	}
	return &DecayStepper{decayTime: decayTime, baseline: baseline, scheme: scheme}, nil
}

// DecayTime returns the relaxation time constant.
func (s *DecayStepper) DecayTime() float64 { return s.decayTime }

// Baseline returns the equilibrium erodibility.
func (s *DecayStepper) Baseline() float64 { return s.baseline }

// Scheme returns the integration scheme.
func (s *DecayStepper) Scheme() DecayScheme { return s.scheme }

// Apply advances every node of field by dt in place. A zero dt leaves the
// field untouched.
func (s *DecayStepper) Apply(field []float64, dt float64) error {
	if dt < 0 || math.IsNaN(dt) {
		return fmt.Errorf("decay dt %v: %w", dt, core.ErrInvalidParameter)
	}
	if dt == 0 {
		return nil
	}

	k0 := s.baseline
	if s.scheme == DecayEuler {
		for i, k := range field {
			field[i] += -(k - k0) * dt / s.decayTime
		}
		return nil
	}

	factor := math.Exp(-dt / s.decayTime)
	for i, k := range field {
		field[i] = k0 + (k-k0)*factor
	}
	return nil
}
