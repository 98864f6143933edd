package system

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type SystemHandler struct {
	tracer  trace.Tracer
	cache   CacheAdmin
	session SessionInfo
}

func New(
	tracer trace.Tracer,
	cacheAdmin CacheAdmin,
	session SessionInfo,
) *SystemHandler {
	return &SystemHandler{
		tracer:  tracer,
		cache:   cacheAdmin,
		session: session,
	}
}

// Health serves GET /health. The process is healthy even when the cache is
// down, so this always answers 200.
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "SystemHandler.Health")
	defer span.End()

	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"cache_enabled": h.cache.Enabled(ctx),
		"logged_in":     h.session.Authenticated(),
	})
}

// CacheStats serves GET /api/cache/stats.
func (h *SystemHandler) CacheStats(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "SystemHandler.CacheStats")
	defer span.End()

	c.JSON(http.StatusOK, h.cache.Stats(ctx))
}

// CacheClear serves POST /api/cache/clear.
func (h *SystemHandler) CacheClear(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "SystemHandler.CacheClear")
	defer span.End()

	if !h.cache.ClearAll(ctx) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "cache store not available"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cleared": true})
}
