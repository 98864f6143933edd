package favorites_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/rhythmbox/rhythmbox/internal/app/services/favorites"
	"github.com/rhythmbox/rhythmbox/internal/app/services/favorites/mocks"
	"github.com/rhythmbox/rhythmbox/internal/models"
)

func newService(store *mocks.MockStore) *favorites.Service {
	return favorites.New(otel.Tracer("test"), store, nil)
}

func library(n int) []models.Track {
	tracks := make([]models.Track, n)
	for i := range tracks {
		tracks[i] = models.Track{
			ID:     fmt.Sprintf("id-%03d", i),
			Name:   fmt.Sprintf("name-%03d", i),
			Artist: fmt.Sprintf("artist-%03d", n-1-i),
		}
	}
	return tracks
}

func TestBrowse_PagedBranch(t *testing.T) {
	store := &mocks.MockStore{}
	store.On("ListPage", mock.Anything, 20, 20).Return(library(20), nil).Once()
	store.On("TotalCount", mock.Anything).Return(57, nil).Once()

	page, err := newService(store).Browse(context.Background(), 2, 20, "default")

	require.NoError(t, err)
	assert.Equal(t, 57, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Tracks, 20)
	store.AssertExpectations(t)
	store.AssertNotCalled(t, "ListAll", mock.Anything)
}

func TestBrowse_BranchSelection(t *testing.T) {
	t.Run("oversized limit forces fetch-all", func(t *testing.T) {
		store := &mocks.MockStore{}
		store.On("ListAll", mock.Anything).Return(library(3), nil).Once()

		_, err := newService(store).Browse(context.Background(), 1, 5000, "default")

		require.NoError(t, err)
		store.AssertNotCalled(t, "ListPage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("custom sort forces fetch-all", func(t *testing.T) {
		store := &mocks.MockStore{}
		store.On("ListAll", mock.Anything).Return(library(3), nil).Once()

		_, err := newService(store).Browse(context.Background(), 1, 20, favorites.SortNameAsc)

		require.NoError(t, err)
		store.AssertNotCalled(t, "ListPage", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBrowse_SortStableAndCaseInsensitive(t *testing.T) {
	store := &mocks.MockStore{}
	store.On("ListAll", mock.Anything).Return([]models.Track{
		{ID: "1", Name: "b"},
		{ID: "2", Name: "A"},
		{ID: "3", Name: "a2"},
	}, nil).Once()

	page, err := newService(store).Browse(context.Background(), 1, 20, favorites.SortNameAsc)

	require.NoError(t, err)
	require.Len(t, page.Tracks, 3)
	assert.Equal(t, "A", page.Tracks[0].Name)
	assert.Equal(t, "a2", page.Tracks[1].Name)
	assert.Equal(t, "b", page.Tracks[2].Name)
}

func TestBrowse_SortPreservesOrderOfEqualKeys(t *testing.T) {
	store := &mocks.MockStore{}
	store.On("ListAll", mock.Anything).Return([]models.Track{
		{ID: "first", Name: "Same"},
		{ID: "second", Name: "same"},
		{ID: "third", Name: "SAME"},
	}, nil).Once()

	page, err := newService(store).Browse(context.Background(), 1, 20, favorites.SortNameAsc)

	require.NoError(t, err)
	assert.Equal(t, "first", page.Tracks[0].ID)
	assert.Equal(t, "second", page.Tracks[1].ID)
	assert.Equal(t, "third", page.Tracks[2].ID)
}

func TestBrowse_FetchAllSentinel(t *testing.T) {
	store := &mocks.MockStore{}
	store.On("ListAll", mock.Anything).Return(library(37), nil).Once()

	page, err := newService(store).Browse(context.Background(), 1, 5000, "default")

	require.NoError(t, err)
	assert.Equal(t, 37, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 37, page.Limit)
	assert.Equal(t, 1, page.TotalPages)
	assert.Len(t, page.Tracks, 37)
}

func TestBrowse_SortedSliceArithmetic(t *testing.T) {
	store := &mocks.MockStore{}
	store.On("ListAll", mock.Anything).Return(library(57), nil).Once()

	page, err := newService(store).Browse(context.Background(), 2, 20, favorites.SortArtistAsc)

	require.NoError(t, err)
	assert.Equal(t, 57, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Tracks, 20)
	// library() builds artists in reverse, so artist-asc flips the ids:
	// sorted index 20 holds id-036.
	assert.Equal(t, "artist-020", page.Tracks[0].Artist)
	assert.Equal(t, "artist-039", page.Tracks[19].Artist)
}

func TestBrowse_PageBeyondEnd(t *testing.T) {
	store := &mocks.MockStore{}
	store.On("ListAll", mock.Anything).Return(library(5), nil).Once()

	page, err := newService(store).Browse(context.Background(), 9, 20, favorites.SortNameAsc)

	require.NoError(t, err)
	assert.Empty(t, page.Tracks)
	assert.Equal(t, 5, page.Total)
}

func TestBrowse_TotalCountFallback(t *testing.T) {
	store := &mocks.MockStore{}
	store.On("ListPage", mock.Anything, 20, 0).Return(library(15), nil).Once()
	store.On("TotalCount", mock.Anything).Return(0, errors.New("boom")).Once()

	page, err := newService(store).Browse(context.Background(), 1, 20, "default")

	require.NoError(t, err)
	assert.Equal(t, 15, page.Total)
	assert.Len(t, page.Tracks, 15)
}

func TestBrowse_ErrorsSurfaceExplicitly(t *testing.T) {
	t.Run("paged fetch failure", func(t *testing.T) {
		store := &mocks.MockStore{}
		fetchErr := errors.New("spotify down")
		store.On("ListPage", mock.Anything, 20, 0).Return(nil, fetchErr).Once()

		page, err := newService(store).Browse(context.Background(), 1, 20, "default")

		assert.ErrorIs(t, err, fetchErr)
		assert.Empty(t, page.Tracks)
		assert.Zero(t, page.Total)
	})

	t.Run("fetch-all failure", func(t *testing.T) {
		store := &mocks.MockStore{}
		fetchErr := errors.New("spotify down")
		store.On("ListAll", mock.Anything).Return(nil, fetchErr).Once()

		page, err := newService(store).Browse(context.Background(), 1, 20, favorites.SortNameAsc)

		assert.ErrorIs(t, err, fetchErr)
		assert.Empty(t, page.Tracks)
		assert.Zero(t, page.Total)
	})
}

func TestBrowse_LimitClamping(t *testing.T) {
	store := &mocks.MockStore{}
	store.On("ListPage", mock.Anything, 20, 0).Return(library(5), nil).Once()
	store.On("TotalCount", mock.Anything).Return(5, nil).Once()

	page, err := newService(store).Browse(context.Background(), 1, 3, "default")

	require.NoError(t, err)
	assert.Equal(t, 20, page.Limit)
}

func TestAddRemove(t *testing.T) {
	t.Run("add success", func(t *testing.T) {
		store := &mocks.MockStore{}
		store.On("Add", mock.Anything, "track-1").Return(nil).Once()

		ok, err := newService(store).Add(context.Background(), "track-1")

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("remove failure surfaces", func(t *testing.T) {
		store := &mocks.MockStore{}
		removeErr := errors.New("no auth")
		store.On("Remove", mock.Anything, "track-1").Return(removeErr).Once()

		ok, err := newService(store).Remove(context.Background(), "track-1")

		assert.ErrorIs(t, err, removeErr)
		assert.False(t, ok)
	})
}
