package wildfire

import (
	"fmt"

	"burnscar/internal/core"
)

// ScenarioResult captures telemetry from a deterministic wildfire run used
// for parameter sweeps.
type ScenarioResult struct {
	// Fires counts the fire events applied.
	Fires int
	// BurnedNodes sums the affected node count over every fire.
	BurnedNodes int
	// LargestRadius is the biggest fire radius drawn.
	LargestRadius float64
	// PeakMean and PeakMax track the highest field mean and maximum seen
	// after any step.
	PeakMean float64
	PeakMax  float64
	// FinalMean is the field mean after the last step.
	FinalMean float64
	// StepsSimulated reports how many steps ran.
	StepsSimulated int
}

// RunScenario builds a world from cfg, resets it with the configured seed and
// advances it steps times.
func RunScenario(cfg Config, steps int) (ScenarioResult, error) {
	if steps <= 0 {
		return ScenarioResult{}, nil
	}

	world, err := NewWithConfig(cfg)
	if err != nil {
		return ScenarioResult{}, err
	}
	world.Reset(0)

	var result ScenarioResult
	for step := 0; step < steps; step++ {
		before := len(world.Events())
		if err := world.Step(); err != nil {
			return result, fmt.Errorf("scenario: %w", err)
		}
		for _, ev := range world.Events()[before:] {
			result.Fires++
			result.BurnedNodes += ev.Affected
			if ev.Radius > result.LargestRadius {
				result.LargestRadius = ev.Radius
			}
		}

		stats := core.Stats(world.Field())
		if step == 0 || stats.Mean > result.PeakMean {
			result.PeakMean = stats.Mean
		}
		if step == 0 || stats.Max > result.PeakMax {
			result.PeakMax = stats.Max
		}
		result.FinalMean = stats.Mean
		result.StepsSimulated++
	}
	return result, nil
}
