package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rhythmbox/rhythmbox/internal/models"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) SearchTracks(ctx context.Context, query string, limit int) []models.Track {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Track)
}

func (m *MockCatalogService) SearchArtists(ctx context.Context, query string, limit int) []models.Artist {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Artist)
}

func (m *MockCatalogService) ArtistDetails(ctx context.Context, artistID string) *models.Artist {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.Artist)
}

func (m *MockCatalogService) ArtistTopTracks(ctx context.Context, artistID, country string) []models.Track {
	args := m.Called(ctx, artistID, country)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Track)
}

func (m *MockCatalogService) RelatedArtists(ctx context.Context, artistID string, limit int) []models.Artist {
	args := m.Called(ctx, artistID, limit)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Artist)
}
