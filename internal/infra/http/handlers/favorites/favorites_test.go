package favorites_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	appfavorites "github.com/rhythmbox/rhythmbox/internal/app/services/favorites"
	handler "github.com/rhythmbox/rhythmbox/internal/infra/http/handlers/favorites"
	"github.com/rhythmbox/rhythmbox/internal/infra/http/handlers/favorites/mocks"
	spotifyrepo "github.com/rhythmbox/rhythmbox/internal/infra/repository/spotify"
	"github.com/rhythmbox/rhythmbox/internal/models"
)

func newTestContext(t *testing.T, method, target string, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(method, target, nil)
	ctx.Params = params
	return ctx, recorder
}

func TestFavoritesHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		expectedPage   int
		expectedLimit  int
		expectedSort   string
		serviceErr     error
		expectedStatus int
	}{
		{
			name:           "defaults",
			target:         "/api/favorites",
			expectedPage:   1,
			expectedLimit:  0,
			expectedSort:   "default",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "explicit paging and sort",
			target:         "/api/favorites?page=3&limit=50&sort=artist-desc",
			expectedPage:   3,
			expectedLimit:  50,
			expectedSort:   "artist-desc",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed page falls back",
			target:         "/api/favorites?page=abc",
			expectedPage:   1,
			expectedLimit:  0,
			expectedSort:   "default",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not logged in",
			target:         "/api/favorites",
			expectedPage:   1,
			expectedLimit:  0,
			expectedSort:   "default",
			serviceErr:     spotifyrepo.ErrNotAuthenticated,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "spotify failure",
			target:         "/api/favorites",
			expectedPage:   1,
			expectedLimit:  0,
			expectedSort:   "default",
			serviceErr:     assert.AnError,
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, recorder := newTestContext(t, http.MethodGet, tt.target, nil)

			mockService := &mocks.MockFavoritesService{}
			t.Cleanup(func() {
				mockService.AssertExpectations(t)
			})

			result := appfavorites.Page{
				Tracks: []models.Track{{ID: "t1"}},
				Total:  1, Page: 1, Limit: 20, TotalPages: 1, Sort: tt.expectedSort,
			}
			mockService.On("Browse", mock.Anything, tt.expectedPage, tt.expectedLimit, tt.expectedSort).
				Return(result, tt.serviceErr).Once()

			h := handler.New(otel.Tracer("test"), mockService)
			h.List(ctx)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			if tt.expectedStatus == http.StatusOK {
				var payload appfavorites.Page
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
				assert.Equal(t, result, payload)
			}
		})
	}
}

func TestFavoritesHandler_AddRemove(t *testing.T) {
	t.Run("add success", func(t *testing.T) {
		ctx, recorder := newTestContext(t, http.MethodPost, "/api/favorites/t1",
			gin.Params{{Key: "id", Value: "t1"}})

		mockService := &mocks.MockFavoritesService{}
		mockService.On("Add", mock.Anything, "t1").Return(true, nil).Once()

		h := handler.New(otel.Tracer("test"), mockService)
		h.Add(ctx)

		require.Equal(t, http.StatusOK, recorder.Code)
		var payload struct {
			ID    string `json:"id"`
			Saved bool   `json:"saved"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
		assert.Equal(t, "t1", payload.ID)
		assert.True(t, payload.Saved)
		mockService.AssertExpectations(t)
	})

	t.Run("add rejects blank id", func(t *testing.T) {
		ctx, recorder := newTestContext(t, http.MethodPost, "/api/favorites/%20",
			gin.Params{{Key: "id", Value: " "}})

		mockService := &mocks.MockFavoritesService{}
		mockService.On("Add", mock.Anything, " ").
			Return(false, spotifyrepo.ErrInvalidTrackID).Once()

		h := handler.New(otel.Tracer("test"), mockService)
		h.Add(ctx)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("remove requires login", func(t *testing.T) {
		ctx, recorder := newTestContext(t, http.MethodDelete, "/api/favorites/t1",
			gin.Params{{Key: "id", Value: "t1"}})

		mockService := &mocks.MockFavoritesService{}
		mockService.On("Remove", mock.Anything, "t1").
			Return(false, spotifyrepo.ErrNotAuthenticated).Once()

		h := handler.New(otel.Tracer("test"), mockService)
		h.Remove(ctx)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		mockService.AssertExpectations(t)
	})
}

func TestFavoritesHandler_Artists(t *testing.T) {
	t.Run("lists distinct artists", func(t *testing.T) {
		ctx, recorder := newTestContext(t, http.MethodGet, "/api/favorites/artists", nil)

		mockService := &mocks.MockFavoritesService{}
		mockService.On("Artists", mock.Anything).
			Return([]string{"Daft Punk", "Romanthony"}, nil).Once()

		h := handler.New(otel.Tracer("test"), mockService)
		h.Artists(ctx)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"artists":["Daft Punk","Romanthony"]}`, recorder.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("requires login", func(t *testing.T) {
		ctx, recorder := newTestContext(t, http.MethodGet, "/api/favorites/artists", nil)

		mockService := &mocks.MockFavoritesService{}
		mockService.On("Artists", mock.Anything).
			Return(nil, spotifyrepo.ErrNotAuthenticated).Once()

		h := handler.New(otel.Tracer("test"), mockService)
		h.Artists(ctx)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		mockService.AssertExpectations(t)
	})
}

func TestFavoritesHandler_Contains(t *testing.T) {
	t.Run("missing ids", func(t *testing.T) {
		ctx, recorder := newTestContext(t, http.MethodGet, "/api/favorites/contains", nil)

		h := handler.New(otel.Tracer("test"), &mocks.MockFavoritesService{})
		h.Contains(ctx)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("maps flags back to ids", func(t *testing.T) {
		ctx, recorder := newTestContext(t, http.MethodGet,
			"/api/favorites/contains?ids=t1,t2,t3", nil)

		mockService := &mocks.MockFavoritesService{}
		mockService.On("Contains", mock.Anything, []string{"t1", "t2", "t3"}).
			Return([]bool{true, false, true}, nil).Once()

		h := handler.New(otel.Tracer("test"), mockService)
		h.Contains(ctx)

		require.Equal(t, http.StatusOK, recorder.Code)
		var payload struct {
			Saved map[string]bool `json:"saved"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
		assert.Equal(t, map[string]bool{"t1": true, "t2": false, "t3": true}, payload.Saved)
		mockService.AssertExpectations(t)
	})
}
