package match

import (
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/kunjpatel/go-mood-recommender/internal/catalog"
	"github.com/kunjpatel/go-mood-recommender/internal/mood"
)

// DefaultVibeClusters is how many vibe groups to detect in a candidate
// batch.
const DefaultVibeClusters = 3

// Vibe summarizes one cluster of the candidate pool: a descriptive name
// derived from the cluster centroid plus the member count. Purely
// diagnostic; vibes never influence ranking order.
type Vibe struct {
	Name     string          `json:"name"`
	Count    int             `json:"count"`
	Centroid mood.Attributes `json:"centroid"`
}

// candidateObservation wraps a Candidate to implement clusters.Observation.
type candidateObservation struct {
	coords clusters.Coordinates
}

func (o candidateObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o candidateObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// SummarizePool groups a candidate batch into vibes by k-means over
// (energy, valence, danceability). Returns nil when the batch is too
// small to cluster or clustering fails; a missing summary is never an
// error.
func SummarizePool(candidates []catalog.Candidate, numClusters int) []Vibe {
	if numClusters <= 0 {
		numClusters = DefaultVibeClusters
	}
	if len(candidates) < numClusters {
		return nil
	}

	var obs clusters.Observations
	for _, c := range candidates {
		obs = append(obs, candidateObservation{
			coords: clusters.Coordinates{
				c.Attributes.Energy,
				c.Attributes.Valence,
				c.Attributes.Danceability,
			},
		})
	}

	km := kmeans.New()
	result, err := km.Partition(obs, numClusters)
	if err != nil {
		return nil
	}

	var vibes []Vibe
	for _, cluster := range result {
		if len(cluster.Observations) == 0 {
			continue
		}
		centroid := mood.Attributes{
			Energy:       cluster.Center[0],
			Valence:      cluster.Center[1],
			Danceability: cluster.Center[2],
		}
		vibes = append(vibes, Vibe{
			Name:     vibeName(centroid),
			Count:    len(cluster.Observations),
			Centroid: centroid,
		})
	}
	return vibes
}

// vibeName labels a centroid using a 2x2 energy/valence quadrant
// system with a danceability modifier.
//
// Quadrants:
//   - High Energy + High Valence = "Upbeat Party"
//   - High Energy + Low Valence  = "Intense & Dark"
//   - Low Energy  + High Valence = "Chill & Happy"
//   - Low Energy  + Low Valence  = "Reflective & Melancholy"
func vibeName(centroid mood.Attributes) string {
	highEnergy := centroid.Energy > 0.6
	highValence := centroid.Valence > 0.5

	var baseName string
	switch {
	case highEnergy && highValence:
		baseName = "Upbeat Party"
	case highEnergy && !highValence:
		baseName = "Intense & Dark"
	case !highEnergy && highValence:
		baseName = "Chill & Happy"
	default: // low energy, low valence
		baseName = "Reflective & Melancholy"
	}

	if centroid.Danceability > 0.75 {
		return baseName + " (Danceable)"
	}
	return baseName
}
