package favorites_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/rhythmbox/rhythmbox/internal/app/services/favorites"
	"github.com/rhythmbox/rhythmbox/internal/app/services/favorites/mocks"
	"github.com/rhythmbox/rhythmbox/internal/models"
)

func TestArtists_SplitsCreditsAndDeduplicates(t *testing.T) {
	store := &mocks.MockStore{}
	store.On("ListAll", mock.Anything).Return([]models.Track{
		{ID: "1", Artist: "Daft Punk, Pharrell Williams"},
		{ID: "2", Artist: "Daft Punk feat. Romanthony"},
		{ID: "3", Artist: "aesop Rock & Homeboy Sandman"},
		{ID: "4", Artist: "Beyoncé ft. Jay-Z"},
		{ID: "5", Artist: "Santana with Rob Thomas"},
	}, nil).Once()

	artists, err := favorites.New(otel.Tracer("test"), store, nil).Artists(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{
		"aesop Rock",
		"Beyoncé",
		"Daft Punk",
		"Homeboy Sandman",
		"Jay-Z",
		"Pharrell Williams",
		"Rob Thomas",
		"Romanthony",
		"Santana",
	}, artists)
}

func TestArtists_EmptyLibrary(t *testing.T) {
	store := &mocks.MockStore{}
	store.On("ListAll", mock.Anything).Return([]models.Track{}, nil).Once()

	artists, err := favorites.New(otel.Tracer("test"), store, nil).Artists(context.Background())

	require.NoError(t, err)
	assert.Empty(t, artists)
	assert.NotNil(t, artists)
}

func TestArtists_FetchFailureSurfaces(t *testing.T) {
	store := &mocks.MockStore{}
	fetchErr := errors.New("spotify down")
	store.On("ListAll", mock.Anything).Return(nil, fetchErr).Once()

	_, err := favorites.New(otel.Tracer("test"), store, nil).Artists(context.Background())

	assert.ErrorIs(t, err, fetchErr)
}

func TestArtists_ReusesMemoizedLibrary(t *testing.T) {
	store := &mocks.MockStore{}
	store.On("ListAll", mock.Anything).Return(library(3), nil).Once()

	svc := favorites.New(otel.Tracer("test"), store, newFakeStore())

	_, err := svc.Browse(context.Background(), 1, 20, favorites.SortNameAsc)
	require.NoError(t, err)

	artists, err := svc.Artists(context.Background())

	require.NoError(t, err)
	assert.Len(t, artists, 3)
	store.AssertExpectations(t)
}
