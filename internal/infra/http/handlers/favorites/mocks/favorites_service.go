package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	appfavorites "github.com/rhythmbox/rhythmbox/internal/app/services/favorites"
)

type MockFavoritesService struct {
	mock.Mock
}

func (m *MockFavoritesService) Browse(ctx context.Context, page, limit int, sortMode string) (appfavorites.Page, error) {
	args := m.Called(ctx, page, limit, sortMode)
	return args.Get(0).(appfavorites.Page), args.Error(1)
}

func (m *MockFavoritesService) Add(ctx context.Context, trackID string) (bool, error) {
	args := m.Called(ctx, trackID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoritesService) Remove(ctx context.Context, trackID string) (bool, error) {
	args := m.Called(ctx, trackID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoritesService) Contains(ctx context.Context, trackIDs []string) ([]bool, error) {
	args := m.Called(ctx, trackIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bool), args.Error(1)
}

func (m *MockFavoritesService) Artists(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
