// Package mood maps free-form emotional descriptions onto canonical mood
// profiles and translates them into target musical attributes.
package mood

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Tempo bounds in BPM for any generated or configured profile.
const (
	MinTempo = 40
	MaxTempo = 220
)

// Configuration errors.
var (
	// ErrNoProfiles is returned when the configured profile set is empty.
	ErrNoProfiles = errors.New("mood profile set is empty")
)

// Attributes is a vector of quantitative musical attributes.
// Valence, Energy and Danceability are normalized to [0,1]; Tempo is BPM.
type Attributes struct {
	Valence      float64 `json:"valence"`
	Energy       float64 `json:"energy"`
	Tempo        float64 `json:"tempo"`
	Danceability float64 `json:"danceability"`
}

// Profile is a canonical mood category with its target musical attributes.
// Profiles are loaded once at startup and never mutated.
type Profile struct {
	Name   string     `json:"name"`
	Target Attributes `json:"target"`
}

// DefaultProfiles returns the built-in canonical mood set.
// Order is significant: classification ties break toward earlier entries.
func DefaultProfiles() []Profile {
	return []Profile{
		{Name: "happy", Target: Attributes{Valence: 0.85, Energy: 0.80, Tempo: 130, Danceability: 0.75}},
		{Name: "sad", Target: Attributes{Valence: 0.20, Energy: 0.25, Tempo: 75, Danceability: 0.30}},
		{Name: "energetic", Target: Attributes{Valence: 0.75, Energy: 0.90, Tempo: 145, Danceability: 0.85}},
		{Name: "calm", Target: Attributes{Valence: 0.60, Energy: 0.25, Tempo: 85, Danceability: 0.40}},
		{Name: "romantic", Target: Attributes{Valence: 0.70, Energy: 0.45, Tempo: 95, Danceability: 0.55}},
		{Name: "angry", Target: Attributes{Valence: 0.25, Energy: 0.95, Tempo: 150, Danceability: 0.70}},
		{Name: "fear", Target: Attributes{Valence: 0.15, Energy: 0.60, Tempo: 110, Danceability: 0.35}},
		{Name: "surprise", Target: Attributes{Valence: 0.65, Energy: 0.75, Tempo: 125, Danceability: 0.65}},
		{Name: "disgust", Target: Attributes{Valence: 0.10, Energy: 0.40, Tempo: 90, Danceability: 0.25}},
	}
}

// LoadProfiles reads a profile set from a JSON file. The file holds an
// ordered array of {name, target} objects; order fixes tie-breaking.
func LoadProfiles(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mood profiles: %w", err)
	}

	var profiles []Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("parsing mood profiles: %w", err)
	}

	if err := ValidateProfiles(profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// ValidateProfiles checks a profile set for startup-time configuration errors.
func ValidateProfiles(profiles []Profile) error {
	if len(profiles) == 0 {
		return ErrNoProfiles
	}

	seen := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		if p.Name == "" {
			return errors.New("mood profile with empty name")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate mood profile %q", p.Name)
		}
		seen[p.Name] = true

		if err := validateTarget(p.Name, p.Target); err != nil {
			return err
		}
	}
	return nil
}

// validateTarget checks a single target attribute vector.
func validateTarget(name string, t Attributes) error {
	for _, f := range []struct {
		field string
		value float64
	}{
		{"valence", t.Valence},
		{"energy", t.Energy},
		{"danceability", t.Danceability},
	} {
		if f.value < 0 || f.value > 1 {
			return fmt.Errorf("profile %q: %s %v out of range [0,1]", name, f.field, f.value)
		}
	}
	if t.Tempo < MinTempo || t.Tempo > MaxTempo {
		return fmt.Errorf("profile %q: tempo %v out of range [%d,%d]", name, t.Tempo, MinTempo, MaxTempo)
	}
	return nil
}
