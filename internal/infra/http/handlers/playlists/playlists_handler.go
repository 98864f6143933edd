package playlists

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	appplaylists "github.com/rhythmbox/rhythmbox/internal/app/services/playlists"
	spotifyrepo "github.com/rhythmbox/rhythmbox/internal/infra/repository/spotify"
)

type PlaylistsHandler struct {
	tracer           trace.Tracer
	playlistsService PlaylistsService
}

func New(
	tracer trace.Tracer,
	playlistsService PlaylistsService,
) *PlaylistsHandler {
	return &PlaylistsHandler{
		tracer:           tracer,
		playlistsService: playlistsService,
	}
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, spotifyrepo.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
	case errors.Is(err, appplaylists.ErrInvalidPlaylistID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid playlist id"})
	case errors.Is(err, appplaylists.ErrInvalidName):
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "spotify client error"})
	}
}
