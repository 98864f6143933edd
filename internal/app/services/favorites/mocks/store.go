package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rhythmbox/rhythmbox/internal/models"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) ListPage(ctx context.Context, limit, offset int) ([]models.Track, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Track), args.Error(1)
}

func (m *MockStore) ListAll(ctx context.Context) ([]models.Track, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Track), args.Error(1)
}

func (m *MockStore) Add(ctx context.Context, trackID string) error {
	args := m.Called(ctx, trackID)
	return args.Error(0)
}

func (m *MockStore) Remove(ctx context.Context, trackID string) error {
	args := m.Called(ctx, trackID)
	return args.Error(0)
}

func (m *MockStore) ExistsBulk(ctx context.Context, trackIDs []string) ([]bool, error) {
	args := m.Called(ctx, trackIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bool), args.Error(1)
}

func (m *MockStore) TotalCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
