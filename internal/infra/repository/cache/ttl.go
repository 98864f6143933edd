package cache

import "time"

// TTL classes per operation family. Search results churn, catalog metadata is
// near-static, favorites mutate too often to cache for long.
const (
	TTLSearch         = 5 * time.Minute
	TTLArtistDetails  = 30 * time.Minute
	TTLTrackDetails   = 30 * time.Minute
	TTLPlaylist       = 10 * time.Minute
	TTLFavorites      = 2 * time.Minute
	TTLUserProfile    = time.Hour
	TTLRelatedArtists = time.Hour
)
