package mood

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/kunjpatel/go-mood-recommender/internal/embedding"
)

// DefaultSimilarityFloor is the similarity below which a match is logged
// as low-confidence. It never blocks a result: every input has some
// nearest category and the classifier always returns it.
const DefaultSimilarityFloor = 0.15

// Classification is the result of mapping an input onto a canonical mood.
type Classification struct {
	Profile    Profile
	Similarity float64 // in [0,1]
}

// Classifier maps arbitrary words or short phrases to the nearest
// canonical mood profile. Safe for concurrent use: the profile set and
// lexicon are fixed at construction.
type Classifier struct {
	space    *embedding.Space
	profiles []Profile
	lexicon  map[string]string // synonym -> profile name
	floor    float64
}

// NewClassifier creates a classifier over a validated, stably-ordered
// profile set.
func NewClassifier(space *embedding.Space, profiles []Profile) (*Classifier, error) {
	if err := ValidateProfiles(profiles); err != nil {
		return nil, err
	}

	// Keep only lexicon entries that point at a configured profile, so a
	// trimmed-down profile set doesn't produce dangling mappings.
	names := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		names[p.Name] = true
	}
	lexicon := make(map[string]string)
	for synonym, name := range moodLexicon {
		if names[name] {
			lexicon[synonym] = name
		}
	}

	return &Classifier{
		space:    space,
		profiles: profiles,
		lexicon:  lexicon,
		floor:    DefaultSimilarityFloor,
	}, nil
}

// Classify returns the nearest canonical mood for the input text along
// with the similarity score. Exact ties go to the profile appearing
// first in the configured order. There is no "no match" outcome; a
// below-floor best match is still returned.
//
// Embedding failures (embedding.ErrUnavailable,
// embedding.ErrNoVectorizableTokens) propagate untouched.
func (c *Classifier) Classify(ctx context.Context, text string) (Classification, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))

	// Known synonyms map directly with full confidence, skipping the
	// embedding round-trip.
	if name, ok := c.lexicon[normalized]; ok {
		for _, p := range c.profiles {
			if p.Name == name {
				return Classification{Profile: p, Similarity: 1.0}, nil
			}
		}
	}

	best := Classification{Similarity: -1}
	for _, p := range c.profiles {
		sim, err := c.space.Similarity(ctx, normalized, p.Name)
		if err != nil {
			return Classification{}, fmt.Errorf("classifying %q: %w", text, err)
		}
		if sim > best.Similarity {
			best = Classification{Profile: p, Similarity: sim}
		}
	}

	if best.Similarity < c.floor {
		log.Printf("Low-confidence mood match: %q -> %q (similarity %.3f)", text, best.Profile.Name, best.Similarity)
	}
	return best, nil
}
