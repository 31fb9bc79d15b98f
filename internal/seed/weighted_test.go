package seed

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashita-ai/agentseed/internal/model"
)

// stubSource returns fixed values, for steering Choose onto a specific bucket.
type stubSource struct{ f float64 }

func (s stubSource) IntN(int) int       { return 0 }
func (s stubSource) Int64N(int64) int64 { return 0 }
func (s stubSource) Float64() float64   { return s.f }

func TestChooseThresholds(t *testing.T) {
	tests := []struct {
		draw float64
		want model.RunStatus
	}{
		{0, model.RunStatusCompleted},
		{0.6999, model.RunStatusCompleted},
		{0.70, model.RunStatusHasError},
		{0.8499, model.RunStatusHasError},
		{0.85, model.RunStatusTookAction},
		{0.9499, model.RunStatusTookAction},
		{0.95, model.RunStatusRunning},
		{0.9999, model.RunStatusRunning},
	}
	for _, tt := range tests {
		got := RandomStatus(stubSource{tt.draw})
		assert.Equal(t, tt.want, got, "draw %v", tt.draw)
	}
}

func TestChooseFallbackWhenNoBucketMatches(t *testing.T) {
	// A draw at the very top of the range matches no bucket.
	got := Choose(stubSource{1.0}, StatusWeights, model.RunStatus("fallback"))
	assert.Equal(t, model.RunStatus("fallback"), got)
}

func TestChooseZeroWeights(t *testing.T) {
	choices := []Weighted[string]{{"a", 0}, {"b", 0}}
	assert.Equal(t, "default", Choose(stubSource{0.5}, choices, "default"))
	assert.Equal(t, "default", Choose[string](stubSource{0.5}, nil, "default"))
}

func TestChooseSkipsNonPositiveWeights(t *testing.T) {
	choices := []Weighted[string]{{"never", 0}, {"neg", -5}, {"only", 2}}
	for _, f := range []float64{0, 0.5, 0.999} {
		assert.Equal(t, "only", Choose(stubSource{f}, choices, "default"))
	}
}

func TestStatusDistributionConverges(t *testing.T) {
	const draws = 100_000
	src := rand.New(rand.NewPCG(7, 11))

	counts := map[model.RunStatus]int{}
	for range draws {
		counts[RandomStatus(src)]++
	}

	for _, w := range StatusWeights {
		observed := 100 * float64(counts[w.Value]) / draws
		assert.InDelta(t, w.Weight, observed, 2.0, "status %s", w.Value)
	}
}
