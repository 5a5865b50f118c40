package catalog

import "github.com/kunjpatel/go-mood-recommender/internal/mood"

// searchTermsFor picks catalog search queries matching the target
// profile's valence/energy band. Branch order matters: the more
// specific bands are checked before the broad energy-only ones.
func searchTermsFor(target mood.Attributes) []string {
	valence, energy := target.Valence, target.Energy

	switch {
	case valence > 0.7 && energy > 0.7:
		return []string{
			"happy upbeat song", "dance party hits", "feel good music",
			"celebration songs", "cheerful pop",
		}
	case valence < 0.3 && energy > 0.8:
		return []string{
			"intense powerful song", "hard rock anthems", "aggressive workout music",
			"high energy rock", "motivational power songs",
		}
	case valence < 0.4 && energy < 0.4:
		return []string{
			"sad emotional song", "heartbreak ballads", "melancholy acoustic",
			"lonely night songs", "tearjerker music",
		}
	case valence < 0.2:
		return []string{
			"dark moody song", "haunting atmospheric music", "dramatic tension",
			"brooding soundtrack", "suspense music",
		}
	case energy < 0.4:
		return []string{
			"calm relaxing song", "peaceful acoustic music", "mellow chill",
			"soothing instrumental", "quiet evening songs",
		}
	case energy > 0.8:
		return []string{
			"energetic dance song", "party anthems", "fast beat music",
			"pump up songs", "upbeat electronic",
		}
	case valence > 0.6 && energy < 0.6:
		return []string{
			"romantic love song", "soulful ballads", "tender acoustic love",
			"slow dance songs", "dreamy romance music",
		}
	default:
		return []string{
			"popular hits", "top songs", "trending music",
			"classic favorites", "great songs",
		}
	}
}
