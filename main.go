package main

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"

	catalogService "github.com/rhythmbox/rhythmbox/internal/app/services/catalog"
	favoritesService "github.com/rhythmbox/rhythmbox/internal/app/services/favorites"
	playlistsService "github.com/rhythmbox/rhythmbox/internal/app/services/playlists"
	server "github.com/rhythmbox/rhythmbox/internal/infra/http"
	authHandler "github.com/rhythmbox/rhythmbox/internal/infra/http/handlers/auth"
	catalogHandler "github.com/rhythmbox/rhythmbox/internal/infra/http/handlers/catalog"
	favoritesHandler "github.com/rhythmbox/rhythmbox/internal/infra/http/handlers/favorites"
	playlistsHandler "github.com/rhythmbox/rhythmbox/internal/infra/http/handlers/playlists"
	systemHandler "github.com/rhythmbox/rhythmbox/internal/infra/http/handlers/system"
	"github.com/rhythmbox/rhythmbox/internal/infra/repository/cache"
	spotifyRepo "github.com/rhythmbox/rhythmbox/internal/infra/repository/spotify"
)

func main() {
	if err := LoadEnv(); err != nil {
		logrus.WithError(err).Fatal("Failed to load environment variables")
	}
	config := GetEnv()

	setupLogger(config)

	ctx := context.Background()

	if config.OTLPEndpoint != "" {
		spanExporter, err := newSpanExporter(ctx, config.OTLPEndpoint)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to create span exporter")
		}

		tracerProvider, err := newTracerProvider(spanExporter)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to create tracer provider")
		}
		defer func() {
			if err := tracerProvider.Shutdown(ctx); err != nil {
				logrus.WithError(err).Error("Failed to shutdown tracer provider")
			}
		}()

		otel.SetTracerProvider(tracerProvider)
	}

	tracer := otel.Tracer("rhythmbox")

	redisOpts, err := redis.ParseURL(config.RedisURL)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to parse Redis URL")
	}
	redisClient := redis.NewClient(redisOpts)
	cacheStore := cache.New(redisClient, config.CacheNamespace)
	if !cacheStore.Enabled(ctx) {
		logrus.Warn("Cache store unreachable, serving uncached")
	}

	spotifyClientConfig := spotifyRepo.NewClientConfig(
		config.SpotifyClientID,
		config.SpotifyClientSecret,
		nil,
		tracer,
	)
	spotifyClient, err := spotifyRepo.NewClient(ctx, spotifyClientConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create Spotify client")
	}

	session := spotifyRepo.NewSession()
	favoritesStore := spotifyRepo.NewFavoritesStore(session)

	catalogSvc := catalogService.New(tracer, spotifyClient, cacheStore)
	favoritesSvc := favoritesService.New(tracer, favoritesStore, cacheStore)
	playlistsSvc := playlistsService.New(tracer, session, cacheStore)

	authenticator := authHandler.NewAuthenticator(
		config.SpotifyClientID,
		config.SpotifyClientSecret,
		config.SpotifyRedirectURL,
	)

	httpServer, err := server.New(
		server.NewConfig(config.Port, false),
		catalogHandler.New(tracer, catalogSvc, config.DefaultCountry),
		favoritesHandler.New(tracer, favoritesSvc),
		playlistsHandler.New(tracer, playlistsSvc),
		authHandler.New(tracer, authenticator, session),
		systemHandler.New(tracer, cacheStore, session),
	)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create HTTP server")
	}

	logrus.WithField("addr", httpServer.Addr).Info("Starting HTTP server")
	logrus.Fatal(httpServer.ListenAndServe())
}

func setupLogger(config *Env) {
	if config.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
