package catalog

import (
	"context"

	"github.com/rhythmbox/rhythmbox/internal/models"
)

type CatalogService interface {
	SearchTracks(ctx context.Context, query string, limit int) []models.Track
	SearchArtists(ctx context.Context, query string, limit int) []models.Artist
	ArtistDetails(ctx context.Context, artistID string) *models.Artist
	ArtistTopTracks(ctx context.Context, artistID, country string) []models.Track
	RelatedArtists(ctx context.Context, artistID string, limit int) []models.Artist
}
