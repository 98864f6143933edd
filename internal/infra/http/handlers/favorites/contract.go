package favorites

import (
	"context"

	appfavorites "github.com/rhythmbox/rhythmbox/internal/app/services/favorites"
)

type FavoritesService interface {
	Browse(ctx context.Context, page, limit int, sortMode string) (appfavorites.Page, error)
	Add(ctx context.Context, trackID string) (bool, error)
	Remove(ctx context.Context, trackID string) (bool, error)
	Contains(ctx context.Context, trackIDs []string) ([]bool, error)
	Artists(ctx context.Context) ([]string, error)
}
