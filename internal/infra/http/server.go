package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type Server struct {
	*http.Server
}

func New(
	cfg Config,
	catalog CatalogHandler,
	favorites FavoritesHandler,
	playlists PlaylistsHandler,
	auth AuthHandler,
	system SystemHandler,
) (*Server, error) {
	engine := gin.New()

	httpPort, err := strconv.Atoi(cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", cfg.Port, err)
	}

	if !cfg.disableMiddleware {
		engine.Use(gin.Recovery())
		engine.Use(gin.Logger())
		engine.Use(otelgin.Middleware("rhythmbox"))
	}

	engine.GET("/health", system.Health)

	engine.GET("/login", auth.Login)
	engine.GET("/callback", auth.Callback)
	engine.GET("/logout", auth.Logout)

	api := engine.Group("/api")
	{
		api.GET("/search", catalog.Search)
		api.GET("/artists/:id", catalog.Artist)

		api.GET("/favorites", favorites.List)
		api.GET("/favorites/contains", favorites.Contains)
		api.GET("/favorites/artists", favorites.Artists)
		api.POST("/favorites/:id", favorites.Add)
		api.DELETE("/favorites/:id", favorites.Remove)

		api.GET("/playlists", playlists.List)
		api.POST("/playlists", playlists.Create)
		api.GET("/playlists/:id", playlists.Get)
		api.PUT("/playlists/:id", playlists.Rename)
		api.DELETE("/playlists/:id", playlists.Delete)
		api.POST("/playlists/:id/tracks", playlists.AddTracks)
		api.DELETE("/playlists/:id/tracks", playlists.RemoveTracks)

		api.GET("/cache/stats", system.CacheStats)
		api.POST("/cache/clear", system.CacheClear)
	}

	internalServer := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", httpPort),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{internalServer}, nil
}
