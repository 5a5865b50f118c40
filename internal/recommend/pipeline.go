// Package recommend orchestrates mood classification, profile
// generation, candidate retrieval and ranking into a single
// recommendation pipeline.
package recommend

import (
	"context"
	"fmt"
	"log"

	"github.com/kunjpatel/go-mood-recommender/internal/catalog"
	"github.com/kunjpatel/go-mood-recommender/internal/match"
	"github.com/kunjpatel/go-mood-recommender/internal/mood"
)

const (
	// MaxResults caps how many tracks a single request may ask for.
	MaxResults = 50

	// DefaultResults is used when the caller doesn't specify a count.
	DefaultResults = 5

	// poolSize is how many candidates to request from the catalog per
	// recommendation.
	poolSize = 20
)

// Track is one recommended track.
type Track struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// Result is a complete recommendation response.
type Result struct {
	Mood       string          `json:"mood"`       // matched canonical mood
	Similarity float64         `json:"similarity"` // classification confidence in [0,1]
	Target     mood.Attributes `json:"target"`     // generated target profile
	Tracks     []Track         `json:"tracks"`     // ranked, best first; may be empty
	PoolVibes  []match.Vibe    `json:"poolVibes,omitempty"`
}

// Pipeline wires the matching engine together. All collaborators are
// fixed at construction; a Pipeline is safe for concurrent requests.
type Pipeline struct {
	classifier *mood.Classifier
	generator  *mood.Generator
	pool       catalog.Pool
	ranker     *match.Ranker
	market     string
}

// New creates a recommendation pipeline.
func New(classifier *mood.Classifier, generator *mood.Generator, pool catalog.Pool, ranker *match.Ranker, market string) *Pipeline {
	return &Pipeline{
		classifier: classifier,
		generator:  generator,
		pool:       pool,
		ranker:     ranker,
		market:     market,
	}
}

// Recommend returns up to k tracks matching the mood description, best
// match first. Classification and catalog failures are fatal to the
// request and surfaced unwrapped for errors.Is checks; retry and
// fallback policy belong to the caller. An empty candidate pool yields
// an empty track list, not an error.
func (p *Pipeline) Recommend(ctx context.Context, moodText string, k int) (*Result, error) {
	if k <= 0 {
		k = DefaultResults
	}
	if k > MaxResults {
		k = MaxResults
	}

	classification, err := p.classifier.Classify(ctx, moodText)
	if err != nil {
		return nil, fmt.Errorf("classifying mood: %w", err)
	}
	log.Printf("Mood %q -> %q (similarity %.3f)", moodText, classification.Profile.Name, classification.Similarity)

	target := p.generator.Generate(classification)

	candidates, err := p.pool.Fetch(ctx, catalog.Filter{
		Market: p.market,
		Target: target,
		Limit:  poolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching candidates: %w", err)
	}
	log.Printf("Ranking %d candidates for %q", len(candidates), classification.Profile.Name)

	matches := p.ranker.Rank(target, candidates, k)

	tracks := make([]Track, len(matches))
	for i, m := range matches {
		tracks[i] = Track{
			ID:     m.Candidate.ID,
			Title:  m.Candidate.Title,
			Artist: m.Candidate.Artist,
		}
	}

	return &Result{
		Mood:       classification.Profile.Name,
		Similarity: classification.Similarity,
		Target:     target,
		Tracks:     tracks,
		PoolVibes:  match.SummarizePool(candidates, match.DefaultVibeClusters),
	}, nil
}
