// Package catalog implements the read-only search and artist lookups against
// the public Spotify catalog. Every operation except ArtistTopTracks is
// memoized through the cache with an operation-specific TTL.
//
// Failures collapse to empty results at this layer: a caller cannot tell "no
// results" from "API down". Callers that need the distinction live behind the
// favorites service, which returns explicit errors instead.
package catalog

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel/trace"

	"github.com/rhythmbox/rhythmbox/internal/infra/repository/cache"
	"github.com/rhythmbox/rhythmbox/internal/models"
)

const (
	defaultSearchLimit  = 20
	defaultRelatedLimit = 10
)

type searchArgs struct {
	Query string
	Limit int
}

type relatedArgs struct {
	ArtistID string
	Limit    int
}

type Service struct {
	tracer  trace.Tracer
	spotify Fetcher

	searchTracks   func(context.Context, searchArgs) ([]models.Track, error)
	searchArtists  func(context.Context, searchArgs) ([]models.Artist, error)
	artistDetails  func(context.Context, string) (*models.Artist, error)
	relatedArtists func(context.Context, relatedArgs) ([]models.Artist, error)
}

// New wires the memoized read operations. A nil store disables memoization
// entirely; the operations then always hit Spotify.
func New(tracer trace.Tracer, spotify Fetcher, store cache.ReadCache) *Service {
	s := &Service{
		tracer:  tracer,
		spotify: spotify,
	}

	searchKey := func(prefix string) func(searchArgs) string {
		return func(a searchArgs) string {
			return store.KeyFor(prefix, []string{a.Query}, map[string]string{
				"limit": strconv.Itoa(a.Limit),
			})
		}
	}

	if store != nil {
		s.searchTracks = cache.Memoize(store, searchKey("search_tracks"), cache.TTLSearch, s.fetchSearchTracks)
		s.searchArtists = cache.Memoize(store, searchKey("search_artists"), cache.TTLSearch, s.fetchSearchArtists)
		s.artistDetails = cache.Memoize(store, func(id string) string {
			return store.KeyFor("artist_details", []string{id}, nil)
		}, cache.TTLArtistDetails, s.fetchArtistDetails)
		s.relatedArtists = cache.Memoize(store, func(a relatedArgs) string {
			return store.KeyFor("related_artists", []string{a.ArtistID}, map[string]string{
				"limit": strconv.Itoa(a.Limit),
			})
		}, cache.TTLRelatedArtists, s.fetchRelatedArtists)
	} else {
		s.searchTracks = s.fetchSearchTracks
		s.searchArtists = s.fetchSearchArtists
		s.artistDetails = s.fetchArtistDetails
		s.relatedArtists = s.fetchRelatedArtists
	}

	return s
}
