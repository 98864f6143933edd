package playlists

import (
	"context"

	"github.com/rhythmbox/rhythmbox/internal/models"
)

type PlaylistsService interface {
	List(ctx context.Context) ([]models.Playlist, error)
	Get(ctx context.Context, playlistID string) (*models.Playlist, error)
	Create(ctx context.Context, name, description string, public bool) (*models.Playlist, error)
	Rename(ctx context.Context, playlistID, name string) (bool, error)
	Delete(ctx context.Context, playlistID string) (bool, error)
	AddTracks(ctx context.Context, playlistID string, trackIDs []string) (string, error)
	RemoveTracks(ctx context.Context, playlistID string, trackIDs []string) (string, error)
}
