package mood

import (
	"math/rand"
	"testing"
)

func happyClassification(similarity float64) Classification {
	return Classification{
		Profile: Profile{
			Name:   "happy",
			Target: Attributes{Valence: 0.85, Energy: 0.80, Tempo: 130, Danceability: 0.75},
		},
		Similarity: similarity,
	}
}

func TestGenerateFullConfidenceIsUnperturbed(t *testing.T) {
	gen := NewGenerator(DefaultJitter, rand.New(rand.NewSource(1)))

	c := happyClassification(1.0)
	got := gen.Generate(c)

	if got != c.Profile.Target {
		t.Errorf("Generate() with similarity 1.0 = %+v, want base profile %+v", got, c.Profile.Target)
	}
}

func TestGenerateZeroJitterIsUnperturbed(t *testing.T) {
	gen := NewGenerator(0, rand.New(rand.NewSource(1)))

	c := happyClassification(0.3)
	if got := gen.Generate(c); got != c.Profile.Target {
		t.Errorf("Generate() with zero jitter = %+v, want base profile %+v", got, c.Profile.Target)
	}
}

func TestGenerateStaysInBounds(t *testing.T) {
	// Extreme base values plus a large jitter must still clamp.
	gen := NewGenerator(1.0, rand.New(rand.NewSource(42)))
	c := Classification{
		Profile: Profile{
			Name:   "edge",
			Target: Attributes{Valence: 0.99, Energy: 0.01, Tempo: 41, Danceability: 1.0},
		},
		Similarity: 0,
	}

	for i := 0; i < 200; i++ {
		got := gen.Generate(c)

		for name, v := range map[string]float64{
			"valence":      got.Valence,
			"energy":       got.Energy,
			"danceability": got.Danceability,
		} {
			if v < 0 || v > 1 {
				t.Fatalf("Generate() %s = %v, want in [0,1]", name, v)
			}
		}
		if got.Tempo < MinTempo || got.Tempo > MaxTempo {
			t.Fatalf("Generate() tempo = %v, want in [%d,%d]", got.Tempo, MinTempo, MaxTempo)
		}
	}
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	c := happyClassification(0.4)

	a := NewGenerator(DefaultJitter, rand.New(rand.NewSource(7))).Generate(c)
	b := NewGenerator(DefaultJitter, rand.New(rand.NewSource(7))).Generate(c)

	if a != b {
		t.Errorf("Generate() with identical seeds diverged: %+v vs %+v", a, b)
	}
}

func TestGenerateJitterShrinksWithConfidence(t *testing.T) {
	// The weak match must be allowed to wander further from base than
	// the confident one. Compare maximum observed deviation over many
	// draws from the same seed.
	base := happyClassification(0).Profile.Target

	maxDeviation := func(similarity float64) float64 {
		gen := NewGenerator(DefaultJitter, rand.New(rand.NewSource(99)))
		var worst float64
		for i := 0; i < 500; i++ {
			got := gen.Generate(happyClassification(similarity))
			for _, d := range []float64{
				abs(got.Valence - base.Valence),
				abs(got.Energy - base.Energy),
				abs(got.Danceability - base.Danceability),
			} {
				if d > worst {
					worst = d
				}
			}
		}
		return worst
	}

	weak := maxDeviation(0.1)
	confident := maxDeviation(0.9)

	if confident >= weak {
		t.Errorf("max deviation at similarity 0.9 (%v) should be below deviation at 0.1 (%v)", confident, weak)
	}
	if weak > DefaultJitter {
		t.Errorf("max deviation %v exceeds jitter bound %v", weak, DefaultJitter)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
