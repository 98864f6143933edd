package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	spotifyLib "github.com/zmb3/spotify/v2"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) CurrentUser(ctx context.Context) (*spotifyLib.PrivateUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*spotifyLib.PrivateUser), args.Error(1)
}

func (m *MockAPI) CurrentUsersTracks(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.SavedTrackPage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*spotifyLib.SavedTrackPage), args.Error(1)
}

func (m *MockAPI) AddTracksToLibrary(ctx context.Context, ids ...spotifyLib.ID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockAPI) RemoveTracksFromLibrary(ctx context.Context, ids ...spotifyLib.ID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockAPI) UserHasTracks(ctx context.Context, ids ...spotifyLib.ID) ([]bool, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bool), args.Error(1)
}

func (m *MockAPI) CurrentUsersPlaylists(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.SimplePlaylistPage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*spotifyLib.SimplePlaylistPage), args.Error(1)
}

func (m *MockAPI) GetPlaylist(ctx context.Context, playlistID spotifyLib.ID, opts ...spotifyLib.RequestOption) (*spotifyLib.FullPlaylist, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*spotifyLib.FullPlaylist), args.Error(1)
}

func (m *MockAPI) CreatePlaylistForUser(ctx context.Context, userID, playlistName, description string, public bool, collaborative bool) (*spotifyLib.FullPlaylist, error) {
	args := m.Called(ctx, userID, playlistName, description, public, collaborative)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*spotifyLib.FullPlaylist), args.Error(1)
}

func (m *MockAPI) AddTracksToPlaylist(ctx context.Context, playlistID spotifyLib.ID, trackIDs ...spotifyLib.ID) (string, error) {
	args := m.Called(ctx, playlistID, trackIDs)
	return args.String(0), args.Error(1)
}

func (m *MockAPI) RemoveTracksFromPlaylist(ctx context.Context, playlistID spotifyLib.ID, trackIDs ...spotifyLib.ID) (string, error) {
	args := m.Called(ctx, playlistID, trackIDs)
	return args.String(0), args.Error(1)
}

func (m *MockAPI) ChangePlaylistName(ctx context.Context, playlistID spotifyLib.ID, newName string) error {
	args := m.Called(ctx, playlistID, newName)
	return args.Error(0)
}

func (m *MockAPI) UnfollowPlaylist(ctx context.Context, id spotifyLib.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
