// Package embedding provides a semantic word-vector space used for mood
// similarity. Vectors come from a pluggable Provider so tests can run
// without a live embedding service.
package embedding

import (
	"context"
	"errors"
)

// Sentinel errors.
var (
	// ErrNoVector is returned when a word has no vector representation.
	ErrNoVector = errors.New("word has no vector representation")

	// ErrNoVectorizableTokens is returned when no token in a phrase has a vector.
	ErrNoVectorizableTokens = errors.New("no vectorizable tokens in input")

	// ErrUnavailable is returned when the embedding backend cannot be reached.
	ErrUnavailable = errors.New("embedding service unavailable")
)

// Provider supplies fixed-dimensional vectors for single words.
// Implementations must be safe for concurrent use.
type Provider interface {
	// Vector returns the embedding for a single lowercase word.
	// Returns ErrNoVector if the word is unknown to the model and
	// ErrUnavailable if the backend cannot be reached.
	Vector(ctx context.Context, word string) ([]float32, error)
}
