package wildfire

import (
	"strconv"

	"burnscar/internal/core"
)

// Parameters reports the active configuration grouped for display.
func (w *World) Parameters() core.ParameterSnapshot {
	return Snapshot(w.cfg)
}

// Snapshot groups the tunables of cfg for display.
func Snapshot(cfg Config) core.ParameterSnapshot {
	params := cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", cfg.Width),
				intParam("h", "Height", cfg.Height),
				floatParam("dx", "Node spacing", cfg.Spacing),
				int64Param("seed", "Seed", cfg.Seed),
			},
		},
		{
			Name:    "Recovery",
			Summary: "Relaxation of erodibility toward the baseline.",
			Params: []core.Parameter{
				floatParam("decay_time", "Decay time", params.DecayTime),
				floatParam("baseline", "Baseline erodibility", params.Baseline),
				stringParam("decay_scheme", "Decay scheme", string(params.DecayScheme)),
			},
		},
		{
			Name:    "Fire",
			Summary: "Poisson fire occurrence with exponentially distributed radius.",
			Params: []core.Parameter{
				floatParam("fire_frequency", "Fire frequency", params.FireFrequency),
				floatParam("mean_fire_radius", "Mean fire radius", params.MeanFireRadius),
				floatParam("boost", "Erodibility boost", params.Boost),
			},
		},
		{
			Name: "Stepping",
			Params: []core.Parameter{
				floatParam("timestep", "Timestep", params.Timestep),
				stringParam("step_order", "Step order", string(params.StepOrder)),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ToMap flattens cfg into the key/value form read by FromMap.
func ToMap(cfg Config) map[string]string {
	m := map[string]string{}
	for _, g := range Snapshot(cfg).Groups {
		for _, p := range g.Params {
			m[p.Key] = p.Value
		}
	}
	return m
}

// SetFloatParameter updates a floating point tunable of a running world. It
// reports false for unknown keys and rejected values, leaving the world
// unchanged.
func (w *World) SetFloatParameter(key string, value float64) bool {
	p := w.cfg.Params
	switch key {
	case "decay_time":
		p.DecayTime = value
	case "baseline":
		p.Baseline = value
	case "fire_frequency":
		p.FireFrequency = value
	case "mean_fire_radius":
		if !(value > 0) {
			return false
		}
		p.MeanFireRadius = value
	case "boost":
		p.Boost = value
	case "timestep":
		return w.SetTimestep(value) == nil
	default:
		return false
	}

	decay, err := NewDecayStepper(p.DecayTime, p.Baseline, p.DecayScheme)
	if err != nil {
		return false
	}
	fire, err := NewFireGenerator(p.FireFrequency, p.MeanFireRadius, p.Boost, p.Timestep)
	if err != nil {
		return false
	}
	w.decay = decay
	w.fire = fire
	w.cfg.Params = p
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
