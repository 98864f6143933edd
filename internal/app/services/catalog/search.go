package catalog

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	spotifyLib "github.com/zmb3/spotify/v2"

	"github.com/rhythmbox/rhythmbox/internal/models"
)

var ErrSpotifyClient = fmt.Errorf("spotify client error")

// SearchTracks searches the catalog for tracks. Returns an empty slice both
// when nothing matches and when the request fails.
func (s *Service) SearchTracks(ctx context.Context, query string, limit int) []models.Track {
	ctx, span := s.tracer.Start(ctx, "CatalogService.SearchTracks")
	defer span.End()

	tracks, err := s.searchTracks(ctx, searchArgs{Query: query, Limit: limit})
	if err != nil {
		logrus.WithError(err).WithField("query", query).Error("Track search failed")
		return []models.Track{}
	}
	return tracks
}

// SearchArtists searches the catalog for artists.
func (s *Service) SearchArtists(ctx context.Context, query string, limit int) []models.Artist {
	ctx, span := s.tracer.Start(ctx, "CatalogService.SearchArtists")
	defer span.End()

	artists, err := s.searchArtists(ctx, searchArgs{Query: query, Limit: limit})
	if err != nil {
		logrus.WithError(err).WithField("query", query).Error("Artist search failed")
		return []models.Artist{}
	}
	return artists
}

func (s *Service) fetchSearchTracks(ctx context.Context, a searchArgs) ([]models.Track, error) {
	limit := a.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	results, err := s.spotify.Search(ctx, a.Query, spotifyLib.SearchTypeTrack, spotifyLib.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSpotifyClient, err.Error())
	}
	if results == nil || results.Tracks == nil {
		return nil, nil
	}

	tracks := make([]models.Track, 0, len(results.Tracks.Tracks))
	for _, t := range results.Tracks.Tracks {
		if t.ID == "" {
			logrus.Warn("Skipping track without id in search results")
			continue
		}
		tracks = append(tracks, models.TrackFromSpotify(t))
	}
	return tracks, nil
}

func (s *Service) fetchSearchArtists(ctx context.Context, a searchArgs) ([]models.Artist, error) {
	limit := a.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	results, err := s.spotify.Search(ctx, a.Query, spotifyLib.SearchTypeArtist, spotifyLib.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSpotifyClient, err.Error())
	}
	if results == nil || results.Artists == nil {
		return nil, nil
	}

	artists := make([]models.Artist, 0, len(results.Artists.Artists))
	for _, artist := range results.Artists.Artists {
		if artist.ID == "" {
			logrus.Warn("Skipping artist without id in search results")
			continue
		}
		artists = append(artists, models.ArtistFromSpotify(artist))
	}
	return artists, nil
}
