package mood

import (
	"math/rand"
	"sync"
)

const (
	// DefaultJitter is the maximum perturbation applied to a normalized
	// attribute at zero similarity.
	DefaultJitter = 0.15

	// tempoJitterSpan is the tempo equivalent of a full-strength jitter,
	// in BPM.
	tempoJitterSpan = 15
)

// Generator translates a classification into a target attribute vector,
// applying bounded random jitter scaled by match uncertainty. A confident
// match reproduces the base profile; a weak match gets more variety so
// repeated unusual queries don't always land on the same track.
type Generator struct {
	jitter float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a Generator with the given jitter magnitude and
// random source. The source is injected so tests can fix a seed and
// assert exact values.
func NewGenerator(jitter float64, rng *rand.Rand) *Generator {
	if jitter < 0 {
		jitter = 0
	}
	return &Generator{jitter: jitter, rng: rng}
}

// Generate produces a target attribute vector from a classification.
// Normalized fields stay in [0,1]; tempo stays in [MinTempo, MaxTempo].
// With similarity 1.0 the base profile is returned unperturbed.
func (g *Generator) Generate(c Classification) Attributes {
	base := c.Profile.Target
	scale := g.jitter * (1 - c.Similarity)

	g.mu.Lock()
	defer g.mu.Unlock()

	return Attributes{
		Valence:      clamp01(base.Valence + scale*g.uniform()),
		Energy:       clamp01(base.Energy + scale*g.uniform()),
		Tempo:        clampTempo(base.Tempo + scale*tempoJitterSpan*g.uniform()),
		Danceability: clamp01(base.Danceability + scale*g.uniform()),
	}
}

// uniform returns a random value in [-1, 1).
func (g *Generator) uniform() float64 {
	return g.rng.Float64()*2 - 1
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func clampTempo(v float64) float64 {
	switch {
	case v < MinTempo:
		return MinTempo
	case v > MaxTempo:
		return MaxTempo
	}
	return v
}
