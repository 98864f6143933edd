// Package favorites decides, per request, between server-side pagination and
// fetching the whole liked-songs library to sort and slice it locally. Unlike
// the catalog, every failure here surfaces as an explicit error so handlers
// can render an error state instead of a silently empty library.
package favorites

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/rhythmbox/rhythmbox/internal/infra/repository/cache"
	"github.com/rhythmbox/rhythmbox/internal/models"
)

const (
	// fetchAllThreshold is the limit above which the request means "give me
	// everything": pagination is bypassed and the whole library is returned.
	fetchAllThreshold = 1000

	minPageLimit     = 20
	maxPageLimit     = 100
	defaultPageLimit = 20
)

type pageArgs struct {
	Limit  int
	Offset int
}

type Service struct {
	tracer trace.Tracer
	store  Store

	listPage   func(context.Context, pageArgs) ([]models.Track, error)
	listAll    func(context.Context, string) ([]models.Track, error)
	totalCount func(context.Context, string) (int, error)
	add        func(context.Context, string) (bool, error)
	remove     func(context.Context, string) (bool, error)
}

// New builds the service. The cache store may be nil; reads then hit Spotify
// every time and writes skip invalidation. Favorites entries expire quickly
// anyway, the write-path invalidation just shortens the stale window.
func New(tracer trace.Tracer, store Store, cacheStore cache.Store) *Service {
	s := &Service{
		tracer: tracer,
		store:  store,
	}

	s.listPage = func(ctx context.Context, a pageArgs) ([]models.Track, error) {
		return store.ListPage(ctx, a.Limit, a.Offset)
	}
	s.listAll = func(ctx context.Context, _ string) ([]models.Track, error) {
		return store.ListAll(ctx)
	}
	s.totalCount = func(ctx context.Context, _ string) (int, error) {
		return store.TotalCount(ctx)
	}

	doAdd := func(ctx context.Context, trackID string) (bool, error) {
		if err := store.Add(ctx, trackID); err != nil {
			return false, err
		}
		return true, nil
	}
	doRemove := func(ctx context.Context, trackID string) (bool, error) {
		if err := store.Remove(ctx, trackID); err != nil {
			return false, err
		}
		return true, nil
	}
	s.add = doAdd
	s.remove = doRemove

	if cacheStore != nil {
		s.listPage = cache.Memoize(cacheStore, func(a pageArgs) string {
			return cacheStore.KeyFor("favorites", nil, map[string]string{
				"limit":  strconv.Itoa(a.Limit),
				"offset": strconv.Itoa(a.Offset),
			})
		}, cache.TTLFavorites, s.listPage)
		s.listAll = cache.Memoize(cacheStore, func(marker string) string {
			return cacheStore.KeyFor("favorites", []string{marker}, nil)
		}, cache.TTLFavorites, s.listAll)
		s.totalCount = cache.Memoize(cacheStore, func(marker string) string {
			return cacheStore.KeyFor("favorites", []string{marker}, nil)
		}, cache.TTLFavorites, s.totalCount)

		pattern := cacheStore.Namespace() + ":favorites:*"
		s.add = cache.InvalidateAfter(cacheStore, pattern, doAdd)
		s.remove = cache.InvalidateAfter(cacheStore, pattern, doRemove)
	}

	return s
}

// Add saves a track to the user's favorites and invalidates stale favorites
// cache entries.
func (s *Service) Add(ctx context.Context, trackID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "FavoritesService.Add")
	defer span.End()

	ok, err := s.add(ctx, trackID)
	if err != nil {
		logrus.WithError(err).WithField("track_id", trackID).Error("Failed to add favorite")
	}
	return ok, err
}

// Remove deletes a track from the user's favorites.
func (s *Service) Remove(ctx context.Context, trackID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "FavoritesService.Remove")
	defer span.End()

	ok, err := s.remove(ctx, trackID)
	if err != nil {
		logrus.WithError(err).WithField("track_id", trackID).Error("Failed to remove favorite")
	}
	return ok, err
}

// Contains reports, in input order, which of the given tracks are saved.
func (s *Service) Contains(ctx context.Context, trackIDs []string) ([]bool, error) {
	ctx, span := s.tracer.Start(ctx, "FavoritesService.Contains")
	defer span.End()

	return s.store.ExistsBulk(ctx, trackIDs)
}
