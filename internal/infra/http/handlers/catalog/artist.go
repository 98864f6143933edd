package catalog

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const relatedArtistsLimit = 10

// Artist serves GET /api/artists/:id with details, top tracks and related
// artists in one response.
func (h *CatalogHandler) Artist(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "CatalogHandler.Artist")
	defer span.End()

	artistID := strings.TrimSpace(c.Param("id"))
	if artistID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "artist id is required"})
		return
	}

	artist := h.catalogService.ArtistDetails(ctx, artistID)
	if artist == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "artist not found"})
		return
	}

	country := c.DefaultQuery("country", h.defaultCountry)
	artist.TopTracks = h.catalogService.ArtistTopTracks(ctx, artistID, country)

	related := h.catalogService.RelatedArtists(ctx, artistID, relatedArtistsLimit)

	c.JSON(http.StatusOK, gin.H{
		"artist":          artist,
		"related_artists": related,
	})
}
