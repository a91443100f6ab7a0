package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Model defines the minimal contract a field model must implement.
type Model interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step() error
	Field() []float64
}

// Factory constructs a Model using an optional configuration map.
type Factory func(cfg map[string]string) (Model, error)

var models = map[string]Factory{}

// Register adds a model factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	models[name] = f
}

// Models exposes the registry of available model factories.
func Models() map[string]Factory {
	return models
}

// ModelNames returns the registered model names in sorted order.
func ModelNames() []string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
