package favorites

import (
	"context"

	"github.com/rhythmbox/rhythmbox/internal/models"
)

// Store is the saved-tracks adapter the service drives.
type Store interface {
	ListPage(ctx context.Context, limit, offset int) ([]models.Track, error)
	ListAll(ctx context.Context) ([]models.Track, error)
	Add(ctx context.Context, trackID string) error
	Remove(ctx context.Context, trackID string) error
	ExistsBulk(ctx context.Context, trackIDs []string) ([]bool, error)
	TotalCount(ctx context.Context) (int, error)
}
