package db

import (
	"time"

	"github.com/google/uuid"
)

// Recommendation records one served recommendation request.
type Recommendation struct {
	ID                 uuid.UUID
	MoodInput          string
	MatchedMood        string
	Similarity         float64
	TargetValence      float64
	TargetEnergy       float64
	TargetTempo        float64
	TargetDanceability float64
	CreatedAt          time.Time
}

// RecommendationTrack is one track returned for a recommendation, in
// rank order.
type RecommendationTrack struct {
	RecommendationID uuid.UUID
	Position         int // 1-based rank
	TrackID          string
	Title            string
	Artist           string
}
