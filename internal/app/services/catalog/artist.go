package catalog

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	spotifyLib "github.com/zmb3/spotify/v2"

	"github.com/rhythmbox/rhythmbox/internal/models"
)

// ArtistDetails returns the artist record, or nil both when the artist does
// not exist and when the lookup fails.
func (s *Service) ArtistDetails(ctx context.Context, artistID string) *models.Artist {
	ctx, span := s.tracer.Start(ctx, "CatalogService.ArtistDetails")
	defer span.End()

	artist, err := s.artistDetails(ctx, artistID)
	if err != nil {
		logrus.WithError(err).WithField("artist_id", artistID).Error("Artist details lookup failed")
		return nil
	}
	return artist
}

// RelatedArtists returns up to limit artists similar to the given one. The
// API returns a fixed-size list; truncation happens locally.
func (s *Service) RelatedArtists(ctx context.Context, artistID string, limit int) []models.Artist {
	ctx, span := s.tracer.Start(ctx, "CatalogService.RelatedArtists")
	defer span.End()

	artists, err := s.relatedArtists(ctx, relatedArgs{ArtistID: artistID, Limit: limit})
	if err != nil {
		logrus.WithError(err).WithField("artist_id", artistID).Error("Related artists lookup failed")
		return []models.Artist{}
	}
	return artists
}

// ArtistTopTracks fetches an artist's top tracks for a country. Not memoized:
// it is called for page enrichment next to the already-cached details.
func (s *Service) ArtistTopTracks(ctx context.Context, artistID, country string) []models.Track {
	ctx, span := s.tracer.Start(ctx, "CatalogService.ArtistTopTracks")
	defer span.End()

	results, err := s.spotify.GetArtistsTopTracks(ctx, spotifyLib.ID(artistID), country)
	if err != nil {
		logrus.WithError(err).WithField("artist_id", artistID).Error("Top tracks lookup failed")
		return []models.Track{}
	}

	tracks := make([]models.Track, 0, len(results))
	for _, t := range results {
		if t.ID == "" {
			logrus.Warn("Skipping top track without id")
			continue
		}
		tracks = append(tracks, models.TrackFromSpotify(t))
	}
	return tracks
}

func (s *Service) fetchArtistDetails(ctx context.Context, artistID string) (*models.Artist, error) {
	artist, err := s.spotify.GetArtist(ctx, spotifyLib.ID(artistID))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSpotifyClient, err.Error())
	}
	if artist == nil {
		return nil, nil
	}

	converted := models.ArtistFromSpotify(*artist)
	return &converted, nil
}

func (s *Service) fetchRelatedArtists(ctx context.Context, a relatedArgs) ([]models.Artist, error) {
	limit := a.Limit
	if limit <= 0 {
		limit = defaultRelatedLimit
	}

	results, err := s.spotify.GetRelatedArtists(ctx, spotifyLib.ID(a.ArtistID))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSpotifyClient, err.Error())
	}

	artists := make([]models.Artist, 0, limit)
	for _, artist := range results {
		if len(artists) == limit {
			break
		}
		if artist.ID == "" {
			logrus.Warn("Skipping related artist without id")
			continue
		}
		artists = append(artists, models.ArtistFromSpotify(artist))
	}
	return artists, nil
}
