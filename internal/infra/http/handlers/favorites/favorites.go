package favorites

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	appfavorites "github.com/rhythmbox/rhythmbox/internal/app/services/favorites"
)

// List serves GET /api/favorites with page, limit and sort query parameters.
// Out-of-range values are normalized by the service, not rejected.
func (h *FavoritesHandler) List(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "FavoritesHandler.List")
	defer span.End()

	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 0)
	sortMode := c.DefaultQuery("sort", appfavorites.SortDefault)

	result, err := h.favoritesService.Browse(ctx, page, limit, sortMode)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Add serves POST /api/favorites/:id.
func (h *FavoritesHandler) Add(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "FavoritesHandler.Add")
	defer span.End()

	trackID := c.Param("id")

	saved, err := h.favoritesService.Add(ctx, trackID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": strings.TrimSpace(trackID), "saved": saved})
}

// Remove serves DELETE /api/favorites/:id.
func (h *FavoritesHandler) Remove(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "FavoritesHandler.Remove")
	defer span.End()

	trackID := c.Param("id")

	removed, err := h.favoritesService.Remove(ctx, trackID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": strings.TrimSpace(trackID), "removed": removed})
}

// Contains serves GET /api/favorites/contains?ids=a,b,c and maps each id to
// whether it is saved in the user's library.
func (h *FavoritesHandler) Contains(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "FavoritesHandler.Contains")
	defer span.End()

	rawIDs := c.Query("ids")
	if strings.TrimSpace(rawIDs) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids is required"})
		return
	}

	ids := strings.Split(rawIDs, ",")
	flags, err := h.favoritesService.Contains(ctx, ids)
	if err != nil {
		writeError(c, err)
		return
	}

	saved := make(map[string]bool, len(ids))
	for i, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		saved[id] = flags[i]
	}

	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

// Artists serves GET /api/favorites/artists: every distinct artist credited
// across the user's favorites.
func (h *FavoritesHandler) Artists(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "FavoritesHandler.Artists")
	defer span.End()

	artists, err := h.favoritesService.Artists(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"artists": artists})
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
