package server

import (
	"github.com/gin-gonic/gin"
)

type CatalogHandler interface {
	Search(ctx *gin.Context)
	Artist(ctx *gin.Context)
}

type FavoritesHandler interface {
	List(ctx *gin.Context)
	Add(ctx *gin.Context)
	Remove(ctx *gin.Context)
	Contains(ctx *gin.Context)
	Artists(ctx *gin.Context)
}

type PlaylistsHandler interface {
	List(ctx *gin.Context)
	Get(ctx *gin.Context)
	Create(ctx *gin.Context)
	Rename(ctx *gin.Context)
	Delete(ctx *gin.Context)
	AddTracks(ctx *gin.Context)
	RemoveTracks(ctx *gin.Context)
}

type AuthHandler interface {
	Login(ctx *gin.Context)
	Callback(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type SystemHandler interface {
	Health(ctx *gin.Context)
	CacheStats(ctx *gin.Context)
	CacheClear(ctx *gin.Context)
}
