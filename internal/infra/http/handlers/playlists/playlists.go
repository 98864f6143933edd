package playlists

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rhythmbox/rhythmbox/internal/models"
)

type createRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Public      bool   `json:"public"`
}

type tracksRequest struct {
	TrackIDs []string `json:"track_ids" binding:"required,min=1"`
}

type renameRequest struct {
	Name string `json:"name" binding:"required"`
}

// List serves GET /api/playlists.
func (h *PlaylistsHandler) List(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "PlaylistsHandler.List")
	defer span.End()

	playlists, err := h.playlistsService.List(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	if playlists == nil {
		playlists = []models.Playlist{}
	}

	c.JSON(http.StatusOK, gin.H{"playlists": playlists})
}

// Get serves GET /api/playlists/:id.
func (h *PlaylistsHandler) Get(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "PlaylistsHandler.Get")
	defer span.End()

	playlist, err := h.playlistsService.Get(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if playlist == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "playlist not found"})
		return
	}

	c.JSON(http.StatusOK, playlist)
}

// Create serves POST /api/playlists.
func (h *PlaylistsHandler) Create(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "PlaylistsHandler.Create")
	defer span.End()

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	playlist, err := h.playlistsService.Create(ctx, req.Name, req.Description, req.Public)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, playlist)
}

// Rename serves PUT /api/playlists/:id.
func (h *PlaylistsHandler) Rename(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "PlaylistsHandler.Rename")
	defer span.End()

	var req renameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	renamed, err := h.playlistsService.Rename(ctx, c.Param("id"), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"renamed": renamed})
}

// Delete serves DELETE /api/playlists/:id.
func (h *PlaylistsHandler) Delete(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "PlaylistsHandler.Delete")
	defer span.End()

	deleted, err := h.playlistsService.Delete(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// AddTracks serves POST /api/playlists/:id/tracks.
func (h *PlaylistsHandler) AddTracks(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "PlaylistsHandler.AddTracks")
	defer span.End()

	var req tracksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "track_ids is required"})
		return
	}

	snapshot, err := h.playlistsService.AddTracks(ctx, c.Param("id"), req.TrackIDs)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"snapshot_id": snapshot})
}

// RemoveTracks serves DELETE /api/playlists/:id/tracks.
func (h *PlaylistsHandler) RemoveTracks(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "PlaylistsHandler.RemoveTracks")
	defer span.End()

	var req tracksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "track_ids is required"})
		return
	}

	snapshot, err := h.playlistsService.RemoveTracks(ctx, c.Param("id"), req.TrackIDs)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"snapshot_id": snapshot})
}
