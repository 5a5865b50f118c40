package embedding

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
)

// Space computes semantic similarity between words and short phrases
// using vectors from a Provider. Safe for concurrent use as long as the
// Provider is.
type Space struct {
	provider Provider
}

// NewSpace creates a Space backed by the given provider.
func NewSpace(provider Provider) *Space {
	return &Space{provider: provider}
}

// Similarity returns the cosine similarity between two words or phrases,
// mapped into [0,1]. Negative cosine values are clamped to 0: opposite
// meanings are "maximally dissimilar", not beyond.
//
// Multi-word input is averaged token by token; tokens without a vector
// are skipped. Returns ErrNoVectorizableTokens if every token of either
// input lacks a vector.
func (s *Space) Similarity(ctx context.Context, a, b string) (float64, error) {
	va, err := s.phraseVector(ctx, a)
	if err != nil {
		return 0, err
	}

	vb, err := s.phraseVector(ctx, b)
	if err != nil {
		return 0, err
	}

	cos := cosine(va, vb)
	if cos < 0 {
		cos = 0
	}
	return cos, nil
}

// phraseVector returns the mean vector of the phrase's vectorizable tokens.
func (s *Space) phraseVector(ctx context.Context, phrase string) ([]float64, error) {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(phrase)))
	if len(tokens) == 0 {
		return nil, ErrNoVectorizableTokens
	}

	var sum []float64
	var found int

	for _, tok := range tokens {
		vec, err := s.provider.Vector(ctx, tok)
		if err != nil {
			if isNoVector(err) {
				continue
			}
			return nil, fmt.Errorf("looking up vector for %q: %w", tok, err)
		}

		if sum == nil {
			sum = make([]float64, len(vec))
		}
		if len(vec) != len(sum) {
			return nil, fmt.Errorf("inconsistent vector dimensions for %q: got %d, want %d", tok, len(vec), len(sum))
		}
		for i, v := range vec {
			sum[i] += float64(v)
		}
		found++
	}

	if found == 0 {
		return nil, ErrNoVectorizableTokens
	}

	for i := range sum {
		sum[i] /= float64(found)
	}
	return sum, nil
}

// cosine computes the cosine similarity of two equal-length vectors.
// Returns 0 if either vector has zero magnitude.
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// isNoVector reports whether err means a single word is unknown to the model.
func isNoVector(err error) bool {
	return errors.Is(err, ErrNoVector)
}
