package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/kunjpatel/go-mood-recommender/internal/mood"
)

const (
	// tracksPerTerm is how many search hits to request per search term.
	tracksPerTerm = 10

	// maxFeaturesPerRequest is the Spotify API limit for a single
	// audio-features batch.
	maxFeaturesPerRequest = 100
)

// SpotifyPool fetches candidate tracks from the Spotify catalog using
// mood-derived search terms and the audio-features endpoint.
type SpotifyPool struct {
	api *spotify.Client
}

// NewSpotifyPool authenticates against Spotify with the client-
// credentials flow and returns a ready pool.
func NewSpotifyPool(ctx context.Context, cfg *Config) (*SpotifyPool, error) {
	auth := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}

	token, err := auth.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("authenticating with Spotify: %w", err)
	}

	httpClient := spotifyauth.New().Client(ctx, token)
	return &SpotifyPool{api: spotify.New(httpClient)}, nil
}

// NewSpotifyPoolFromClient wraps an already-authenticated client.
func NewSpotifyPoolFromClient(api *spotify.Client) *SpotifyPool {
	return &SpotifyPool{api: api}
}

// Fetch searches the catalog with terms matching the target profile,
// deduplicates the hits and attaches audio features. Tracks Spotify has
// no audio features for are dropped. Returns ErrUnavailable (wrapped)
// when the catalog cannot be queried.
func (p *SpotifyPool) Fetch(ctx context.Context, filter Filter) ([]Candidate, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	candidates, err := p.search(ctx, filter, limit)
	if err != nil {
		return nil, err
	}

	candidates = dedupe(candidates)
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	return p.attachAudioFeatures(ctx, candidates)
}

// search collects raw track hits for the filter's search terms,
// stopping once enough have been gathered.
func (p *SpotifyPool) search(ctx context.Context, filter Filter, limit int) ([]Candidate, error) {
	opts := []spotify.RequestOption{spotify.Limit(tracksPerTerm)}
	if filter.Market != "" {
		opts = append(opts, spotify.Market(filter.Market))
	}

	var candidates []Candidate
	for _, term := range searchTermsFor(filter.Target) {
		result, err := p.api.Search(ctx, term, spotify.SearchTypeTrack, opts...)
		if err != nil {
			return nil, fmt.Errorf("%w: searching %q: %v", ErrUnavailable, term, err)
		}
		if result.Tracks == nil {
			continue
		}

		for _, track := range result.Tracks.Tracks {
			candidates = append(candidates, Candidate{
				ID:     track.ID.String(),
				Title:  track.Name,
				Artist: joinArtists(track.Artists),
			})
		}

		if len(candidates) >= 2*limit {
			break
		}
	}
	return candidates, nil
}

// attachAudioFeatures fetches audio features in batches and fills each
// candidate's attribute vector. Candidates without features are dropped:
// they cannot be ranked.
func (p *SpotifyPool) attachAudioFeatures(ctx context.Context, candidates []Candidate) ([]Candidate, error) {
	ids := make([]spotify.ID, len(candidates))
	indexByID := make(map[string]int, len(candidates))
	for i, c := range candidates {
		ids[i] = spotify.ID(c.ID)
		indexByID[c.ID] = i
	}

	withFeatures := make(map[string]bool, len(candidates))
	total := len(ids)

	for i := 0; i < total; i += maxFeaturesPerRequest {
		end := min(i+maxFeaturesPerRequest, total)
		batch := ids[i:end]

		features, err := p.api.GetAudioFeatures(ctx, batch...)
		if err != nil {
			return nil, fmt.Errorf("%w: fetching audio features (batch %d-%d): %v", ErrUnavailable, i+1, end, err)
		}

		for _, f := range features {
			if f == nil {
				continue // Track has no audio features
			}
			idx, ok := indexByID[f.ID.String()]
			if !ok {
				continue
			}
			candidates[idx].Attributes = mood.Attributes{
				Valence:      float64(f.Valence),
				Energy:       float64(f.Energy),
				Tempo:        float64(f.Tempo),
				Danceability: float64(f.Danceability),
			}
			withFeatures[f.ID.String()] = true
		}
	}

	ranked := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if withFeatures[c.ID] {
			ranked = append(ranked, c)
		}
	}
	return ranked, nil
}

// joinArtists joins artist names with ", ".
func joinArtists(artists []spotify.SimpleArtist) string {
	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}
