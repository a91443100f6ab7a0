// Package telemetry provides sinks for fire events produced by the wildfire
// model.
package telemetry

import (
	"log"

	"burnscar/internal/sims/wildfire"
)

// LogRecorder prints one line per fire.
type LogRecorder struct {
	logger *log.Logger
}

// NewLogRecorder writes to logger, or to the standard logger when nil.
func NewLogRecorder(logger *log.Logger) *LogRecorder {
	if logger == nil {
		logger = log.Default()
	}
	return &LogRecorder{logger: logger}
}

// RecordFire logs the fire location and size.
func (r *LogRecorder) RecordFire(ev wildfire.FireEvent) {
	r.logger.Printf("step %d: fire at (%g,%g) radius %.3f with %d nodes inflamed",
		ev.Step, ev.X, ev.Y, ev.Radius, ev.Affected)
}

// Multi fans every event out to each recorder in order.
type Multi []wildfire.EventRecorder

// RecordFire forwards ev to every non-nil recorder.
func (m Multi) RecordFire(ev wildfire.FireEvent) {
	for _, r := range m {
		if r != nil {
			r.RecordFire(ev)
		}
	}
}

// Counter tallies fires and burned nodes.
type Counter struct {
	Fires  int
	Burned int
}

// RecordFire adds ev to the running totals.
func (c *Counter) RecordFire(ev wildfire.FireEvent) {
	c.Fires++
	c.Burned += ev.Affected
}
