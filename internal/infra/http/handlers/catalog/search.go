package catalog

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rhythmbox/rhythmbox/internal/models"
)

const defaultSearchLimit = 20

// Search serves GET /api/search. The type parameter narrows the result to
// tracks or artists; without it both sections are populated.
func (h *CatalogHandler) Search(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "CatalogHandler.Search")
	defer span.End()

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	searchType := c.DefaultQuery("type", "all")
	limit := intQuery(c, "limit", defaultSearchLimit)

	tracks := []models.Track{}
	artists := []models.Artist{}

	switch searchType {
	case "track", "tracks":
		tracks = h.catalogService.SearchTracks(ctx, query, limit)
	case "artist", "artists":
		artists = h.catalogService.SearchArtists(ctx, query, limit)
	case "all":
		tracks = h.catalogService.SearchTracks(ctx, query, limit)
		artists = h.catalogService.SearchArtists(ctx, query, limit)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid search type"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"tracks":  tracks,
		"artists": artists,
	})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
