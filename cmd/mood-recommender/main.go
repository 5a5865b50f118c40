// Command mood-recommender runs the mood-to-music recommendation service.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/kunjpatel/go-mood-recommender/internal/catalog"
	"github.com/kunjpatel/go-mood-recommender/internal/db"
	"github.com/kunjpatel/go-mood-recommender/internal/embedding"
	"github.com/kunjpatel/go-mood-recommender/internal/match"
	"github.com/kunjpatel/go-mood-recommender/internal/mood"
	"github.com/kunjpatel/go-mood-recommender/internal/recommend"
	"github.com/kunjpatel/go-mood-recommender/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Embedding space
	embeddingCfg, err := embedding.LoadConfig()
	if err != nil {
		return err
	}
	space := embedding.NewSpace(embedding.NewClient(embeddingCfg))

	// Mood profiles: built-in set unless MOOD_PROFILES points at a file
	profiles := mood.DefaultProfiles()
	if path := os.Getenv("MOOD_PROFILES"); path != "" {
		profiles, err = mood.LoadProfiles(path)
		if err != nil {
			return fmt.Errorf("loading mood profiles: %w", err)
		}
		log.Printf("Loaded %d mood profiles from %s", len(profiles), path)
	}

	classifier, err := mood.NewClassifier(space, profiles)
	if err != nil {
		return fmt.Errorf("creating classifier: %w", err)
	}

	generator := mood.NewGenerator(mood.DefaultJitter, rand.New(rand.NewSource(time.Now().UnixNano())))

	ranker, err := match.NewRanker(match.DefaultWeights(), match.DefaultTempoNormalizer)
	if err != nil {
		return fmt.Errorf("creating ranker: %w", err)
	}

	// Candidate catalog
	catalogCfg, err := catalog.LoadConfig()
	if err != nil {
		return err
	}
	pool, err := catalog.NewSpotifyPool(ctx, catalogCfg)
	if err != nil {
		return fmt.Errorf("creating candidate pool: %w", err)
	}

	pipeline := recommend.New(classifier, generator, pool, ranker, catalogCfg.Market)

	// Optional recommendation history
	var history *db.HistoryRepository
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		database, err := db.New(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		history = database.History()
		log.Println("Recommendation history enabled")
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = web.DefaultAddr
	}

	server, err := web.NewServer(web.ServerConfig{
		Addr:     addr,
		Pipeline: pipeline,
		Profiles: profiles,
		History:  history,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return server.Run()
}
