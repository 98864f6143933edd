package catalog

import (
	"context"

	spotifyLib "github.com/zmb3/spotify/v2"
)

// Fetcher is the public Spotify surface the catalog reads from.
type Fetcher interface {
	Search(ctx context.Context, query string, t spotifyLib.SearchType, opts ...spotifyLib.RequestOption) (*spotifyLib.SearchResult, error)
	GetArtist(ctx context.Context, id spotifyLib.ID) (*spotifyLib.FullArtist, error)
	GetRelatedArtists(ctx context.Context, id spotifyLib.ID) ([]spotifyLib.FullArtist, error)
	GetArtistsTopTracks(ctx context.Context, id spotifyLib.ID, country string) ([]spotifyLib.FullTrack, error)
}
