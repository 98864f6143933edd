package spotify

import (
	"context"

	spotifyLib "github.com/zmb3/spotify/v2"
)

// API is the subset of the Spotify Web API the user-scoped adapters call.
// *spotifyLib.Client satisfies it; tests substitute a mock.
type API interface {
	CurrentUser(ctx context.Context) (*spotifyLib.PrivateUser, error)

	CurrentUsersTracks(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.SavedTrackPage, error)
	AddTracksToLibrary(ctx context.Context, ids ...spotifyLib.ID) error
	RemoveTracksFromLibrary(ctx context.Context, ids ...spotifyLib.ID) error
	UserHasTracks(ctx context.Context, ids ...spotifyLib.ID) ([]bool, error)

	CurrentUsersPlaylists(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.SimplePlaylistPage, error)
	GetPlaylist(ctx context.Context, playlistID spotifyLib.ID, opts ...spotifyLib.RequestOption) (*spotifyLib.FullPlaylist, error)
	CreatePlaylistForUser(ctx context.Context, userID, playlistName, description string, public bool, collaborative bool) (*spotifyLib.FullPlaylist, error)
	AddTracksToPlaylist(ctx context.Context, playlistID spotifyLib.ID, trackIDs ...spotifyLib.ID) (string, error)
	RemoveTracksFromPlaylist(ctx context.Context, playlistID spotifyLib.ID, trackIDs ...spotifyLib.ID) (string, error)
	ChangePlaylistName(ctx context.Context, playlistID spotifyLib.ID, newName string) error
	UnfollowPlaylist(ctx context.Context, id spotifyLib.ID) error
}
