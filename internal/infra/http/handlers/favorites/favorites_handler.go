package favorites

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	spotifyrepo "github.com/rhythmbox/rhythmbox/internal/infra/repository/spotify"
)

type FavoritesHandler struct {
	tracer           trace.Tracer
	favoritesService FavoritesService
}

func New(
	tracer trace.Tracer,
	favoritesService FavoritesService,
) *FavoritesHandler {
	return &FavoritesHandler{
		tracer:           tracer,
		favoritesService: favoritesService,
	}
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, spotifyrepo.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
	case errors.Is(err, spotifyrepo.ErrInvalidTrackID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid track id"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "spotify client error"})
	}
}
