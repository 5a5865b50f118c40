// Package match scores and ranks candidate tracks against a target
// musical-attribute vector.
package match

import (
	"fmt"
	"math"
	"sort"

	"github.com/kunjpatel/go-mood-recommender/internal/catalog"
	"github.com/kunjpatel/go-mood-recommender/internal/mood"
)

// DefaultTempoNormalizer bounds the tempo distance term to a comparable
// [0,1] range, in BPM.
const DefaultTempoNormalizer = 100

// weightTolerance absorbs float error when checking the weight sum.
const weightTolerance = 1e-9

// Weights are the fixed per-attribute contributions to a match score.
// They must sum to 1.0.
type Weights struct {
	Valence      float64
	Energy       float64
	Tempo        float64
	Danceability float64
}

// DefaultWeights returns the standard scoring weights: valence and
// energy dominate, tempo matters less, danceability least.
func DefaultWeights() Weights {
	return Weights{
		Valence:      0.35,
		Energy:       0.35,
		Tempo:        0.20,
		Danceability: 0.10,
	}
}

// Validate checks that the weights are non-negative and sum to 1.0.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"valence":      w.Valence,
		"energy":       w.Energy,
		"tempo":        w.Tempo,
		"danceability": w.Danceability,
	} {
		if v < 0 {
			return fmt.Errorf("negative %s weight %v", name, v)
		}
	}

	sum := w.Valence + w.Energy + w.Tempo + w.Danceability
	if math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("scoring weights sum to %v, want 1.0", sum)
	}
	return nil
}

// Match pairs a candidate with its score against a target vector.
// Scores are in [0,1], higher is better.
type Match struct {
	Candidate catalog.Candidate
	Score     float64
}

// Ranker scores candidates with a fixed weighted distance function.
// Safe for concurrent use.
type Ranker struct {
	weights         Weights
	tempoNormalizer float64
}

// NewRanker creates a Ranker. Invalid weights or a non-positive tempo
// normalizer are startup errors, never request-time ones.
func NewRanker(weights Weights, tempoNormalizer float64) (*Ranker, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if tempoNormalizer <= 0 {
		return nil, fmt.Errorf("tempo normalizer %v must be positive", tempoNormalizer)
	}
	return &Ranker{weights: weights, tempoNormalizer: tempoNormalizer}, nil
}

// Score computes how well a candidate's attributes match the target.
// Each per-attribute closeness term is clamped to [0,1] before
// weighting, so the weighted sum is itself in [0,1].
func (r *Ranker) Score(target, actual mood.Attributes) float64 {
	tempoTerm := 1 - math.Abs(target.Tempo-actual.Tempo)/r.tempoNormalizer
	if tempoTerm < 0 {
		tempoTerm = 0 // extreme tempo mismatch
	}

	return r.weights.Valence*(1-math.Abs(target.Valence-actual.Valence)) +
		r.weights.Energy*(1-math.Abs(target.Energy-actual.Energy)) +
		r.weights.Tempo*tempoTerm +
		r.weights.Danceability*(1-math.Abs(target.Danceability-actual.Danceability))
}

// Rank scores every candidate against the target and returns the top k
// in descending score order. Ties keep original candidate order, so
// output is deterministic for fixed inputs. An empty candidate batch
// yields an empty result.
func (r *Ranker) Rank(target mood.Attributes, candidates []catalog.Candidate, k int) []Match {
	if len(candidates) == 0 || k <= 0 {
		return nil
	}

	matches := make([]Match, len(candidates))
	for i, c := range candidates {
		matches[i] = Match{Candidate: c, Score: r.Score(target, c.Attributes)}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if k < len(matches) {
		matches = matches[:k]
	}
	return matches
}
