package wildfire

import "strconv"

// StepOrder selects which component runs first within a World step.
type StepOrder string

const (
	// DecayFirst relaxes the field before testing for a fire.
	DecayFirst StepOrder = "decay-first"
	// FireFirst tests for a fire before relaxing the field.
	FireFirst StepOrder = "fire-first"
)

// Params holds the tunables for erodibility recovery and fire seeding.
type Params struct {
	DecayTime   float64     `env:"DECAY_TIME"`
	Baseline    float64     `env:"BASELINE"`
	DecayScheme DecayScheme `env:"DECAY_SCHEME"`

	FireFrequency  float64 `env:"FIRE_FREQUENCY"`
	MeanFireRadius float64 `env:"MEAN_FIRE_RADIUS"`
	Boost          float64 `env:"BOOST"`

	Timestep  float64   `env:"TIMESTEP"`
	StepOrder StepOrder `env:"STEP_ORDER"`
}

// Config controls the grid and the wildfire model.
type Config struct {
	Width   int     `env:"WIDTH"`
	Height  int     `env:"HEIGHT"`
	Spacing float64 `env:"SPACING"`

	Seed int64 `env:"SEED"`

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   64,
		Height:  64,
		Spacing: 1,
		Seed:    1337,
		Params: Params{
			DecayTime:      20,
			Baseline:       1,
			DecayScheme:    DecayExact,
			FireFrequency:  0.05,
			MeanFireRadius: 4,
			Boost:          1,
			Timestep:       1,
			StepOrder:      DecayFirst,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return ApplyMap(DefaultConfig(), cfg)
}

// ApplyMap overrides fields of c with any recognised keys in cfg. Values that
// fail to parse or are out of range are ignored.
func ApplyMap(c Config, cfg map[string]string) Config {
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
	if v, ok := cfg["dx"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Spacing = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["decay_time"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.DecayTime = parsed
		}
	}
	if v, ok := cfg["baseline"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.Baseline = parsed
		}
	}
	if v, ok := cfg["decay_scheme"]; ok {
		switch s := DecayScheme(v); s {
		case DecayExact, DecayEuler:
			c.Params.DecayScheme = s
		}
	}
	if v, ok := cfg["fire_frequency"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.FireFrequency = parsed
		}
	}
	if v, ok := cfg["mean_fire_radius"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.MeanFireRadius = parsed
		}
	}
	if v, ok := cfg["boost"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.Boost = parsed
		}
	}
	if v, ok := cfg["timestep"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Timestep = parsed
		}
	}
	if v, ok := cfg["step_order"]; ok {
		switch o := StepOrder(v); o {
		case DecayFirst, FireFirst:
			c.Params.StepOrder = o
		}
	}
	return c
}
