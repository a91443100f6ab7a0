package core

// Source is the random stream consumed by stochastic components. Both
// *rand.Rand from math/rand/v2 and burnscar/pkg/core.RNG satisfy it.
type Source interface {
	Float64() float64
	// IntN panics if n <= 0.
	IntN(n int) int
	ExpFloat64() float64
}
