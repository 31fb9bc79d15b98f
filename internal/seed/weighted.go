package seed

import "github.com/ashita-ai/agentseed/internal/model"

// Source is the uniform random source the generator draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
	Int64N(n int64) int64
	Float64() float64
}

// Weighted pairs an outcome with its relative weight.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// Choose draws one outcome from choices by scanning cumulative weights against
// a uniform draw in [0, total). If no bucket matches (floating-point edge at the
// top of the range, or all weights zero) it returns fallback.
func Choose[T any](src Source, choices []Weighted[T], fallback T) T {
	var total float64
	for _, c := range choices {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	if total <= 0 {
		return fallback
	}

	r := src.Float64() * total
	var cumulative float64
	for _, c := range choices {
		if c.Weight <= 0 {
			continue
		}
		cumulative += c.Weight
		if r < cumulative {
			return c.Value
		}
	}
	return fallback
}

// StatusWeights is the run status distribution, in percent.
var StatusWeights = []Weighted[model.RunStatus]{
	{model.RunStatusCompleted, 70},
	{model.RunStatusHasError, 15},
	{model.RunStatusTookAction, 10},
	{model.RunStatusRunning, 5},
}

// RandomStatus draws a run status from StatusWeights.
func RandomStatus(src Source) model.RunStatus {
	return Choose(src, StatusWeights, model.RunStatusCompleted)
}
