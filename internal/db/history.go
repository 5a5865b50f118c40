package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HistoryRepository records served recommendations.
type HistoryRepository struct {
	pool *pgxpool.Pool
}

// Record stores a recommendation and its tracks in one transaction.
// Assigns rec.ID and rec.CreatedAt.
func (r *HistoryRepository) Record(ctx context.Context, rec *Recommendation, tracks []RecommendationTrack) error {
	rec.ID = uuid.New()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO recommendations
			(id, mood_input, matched_mood, similarity,
			 target_valence, target_energy, target_tempo, target_danceability, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING created_at
	`
	err = tx.QueryRow(ctx, query,
		rec.ID,
		rec.MoodInput,
		rec.MatchedMood,
		rec.Similarity,
		rec.TargetValence,
		rec.TargetEnergy,
		rec.TargetTempo,
		rec.TargetDanceability,
	).Scan(&rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting recommendation: %w", err)
	}

	if len(tracks) > 0 {
		rows := make([][]any, len(tracks))
		for i, t := range tracks {
			rows[i] = []any{rec.ID, i + 1, t.TrackID, t.Title, t.Artist}
		}
		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"recommendation_tracks"},
			[]string{"recommendation_id", "position", "track_id", "title", "artist"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return fmt.Errorf("inserting recommendation tracks: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// ListRecent returns the most recent recommendations, newest first.
func (r *HistoryRepository) ListRecent(ctx context.Context, limit int) ([]Recommendation, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, mood_input, matched_mood, similarity,
		       target_valence, target_energy, target_tempo, target_danceability, created_at
		FROM recommendations
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recommendations: %w", err)
	}
	defer rows.Close()

	var recs []Recommendation
	for rows.Next() {
		var rec Recommendation
		err := rows.Scan(
			&rec.ID,
			&rec.MoodInput,
			&rec.MatchedMood,
			&rec.Similarity,
			&rec.TargetValence,
			&rec.TargetEnergy,
			&rec.TargetTempo,
			&rec.TargetDanceability,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning recommendation: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recommendations: %w", err)
	}
	return recs, nil
}

// Tracks returns the ranked tracks for a recommendation.
func (r *HistoryRepository) Tracks(ctx context.Context, recommendationID uuid.UUID) ([]RecommendationTrack, error) {
	query := `
		SELECT recommendation_id, position, track_id, title, artist
		FROM recommendation_tracks
		WHERE recommendation_id = $1
		ORDER BY position
	`
	rows, err := r.pool.Query(ctx, query, recommendationID)
	if err != nil {
		return nil, fmt.Errorf("listing recommendation tracks: %w", err)
	}
	defer rows.Close()

	var tracks []RecommendationTrack
	for rows.Next() {
		var t RecommendationTrack
		if err := rows.Scan(&t.RecommendationID, &t.Position, &t.TrackID, &t.Title, &t.Artist); err != nil {
			return nil, fmt.Errorf("scanning recommendation track: %w", err)
		}
		tracks = append(tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recommendation tracks: %w", err)
	}
	return tracks, nil
}
