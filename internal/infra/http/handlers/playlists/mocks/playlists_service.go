package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rhythmbox/rhythmbox/internal/models"
)

type MockPlaylistsService struct {
	mock.Mock
}

func (m *MockPlaylistsService) List(ctx context.Context) ([]models.Playlist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Playlist), args.Error(1)
}

func (m *MockPlaylistsService) Get(ctx context.Context, playlistID string) (*models.Playlist, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playlist), args.Error(1)
}

func (m *MockPlaylistsService) Create(ctx context.Context, name, description string, public bool) (*models.Playlist, error) {
	args := m.Called(ctx, name, description, public)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playlist), args.Error(1)
}

func (m *MockPlaylistsService) Rename(ctx context.Context, playlistID, name string) (bool, error) {
	args := m.Called(ctx, playlistID, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaylistsService) Delete(ctx context.Context, playlistID string) (bool, error) {
	args := m.Called(ctx, playlistID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaylistsService) AddTracks(ctx context.Context, playlistID string, trackIDs []string) (string, error) {
	args := m.Called(ctx, playlistID, trackIDs)
	return args.String(0), args.Error(1)
}

func (m *MockPlaylistsService) RemoveTracks(ctx context.Context, playlistID string, trackIDs []string) (string, error) {
	args := m.Called(ctx, playlistID, trackIDs)
	return args.String(0), args.Error(1)
}
