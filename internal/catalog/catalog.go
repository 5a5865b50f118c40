// Package catalog supplies candidate tracks, with their audio
// attributes, for ranking against a target mood profile.
package catalog

import (
	"context"
	"errors"

	"github.com/kunjpatel/go-mood-recommender/internal/mood"
)

// ErrUnavailable is returned when the candidate catalog cannot be
// queried. The pool does not retry beyond its own transport backoff;
// retry policy belongs to the caller.
var ErrUnavailable = errors.New("candidate catalog unavailable")

// Candidate is a catalog track proposed for ranking. Immutable once
// retrieved.
type Candidate struct {
	ID         string
	Title      string
	Artist     string
	Attributes mood.Attributes
}

// Filter constrains a candidate fetch.
type Filter struct {
	Market string // ISO market code, e.g. "US"
	Target mood.Attributes
	Limit  int
}

// Pool is an opaque source of candidate tracks. Implementations impose
// no ordering guarantee on the returned batch and must honor context
// cancellation. An empty batch is a valid result, not an error.
type Pool interface {
	Fetch(ctx context.Context, filter Filter) ([]Candidate, error)
}
