package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	spotifyLib "github.com/zmb3/spotify/v2"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Search(ctx context.Context, query string, t spotifyLib.SearchType, opts ...spotifyLib.RequestOption) (*spotifyLib.SearchResult, error) {
	args := m.Called(ctx, query, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*spotifyLib.SearchResult), args.Error(1)
}

func (m *MockFetcher) GetArtist(ctx context.Context, id spotifyLib.ID) (*spotifyLib.FullArtist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*spotifyLib.FullArtist), args.Error(1)
}

func (m *MockFetcher) GetRelatedArtists(ctx context.Context, id spotifyLib.ID) ([]spotifyLib.FullArtist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]spotifyLib.FullArtist), args.Error(1)
}

func (m *MockFetcher) GetArtistsTopTracks(ctx context.Context, id spotifyLib.ID, country string) ([]spotifyLib.FullTrack, error) {
	args := m.Called(ctx, id, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]spotifyLib.FullTrack), args.Error(1)
}
