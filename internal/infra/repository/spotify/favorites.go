package spotify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	spotifyLib "github.com/zmb3/spotify/v2"

	"github.com/rhythmbox/rhythmbox/internal/models"
)

var ErrInvalidTrackID = errors.New("spotify: track id must not be blank")

const (
	// maxTracksPerRequest is the Spotify page-size ceiling for saved tracks,
	// and also the chunk size for bulk contains checks.
	maxTracksPerRequest = 50
	// maxListAllPages guards the auto-pagination loop against a misbehaving
	// API that never returns a short page.
	maxListAllPages = 1000
)

// UserSession yields the authorized API client, or an error when the user has
// not completed the OAuth flow.
type UserSession interface {
	API() (API, error)
}

// FavoritesStore reads and mutates the user's "liked songs" collection.
// Favorites mutate too often to be worth memoizing, so every call goes to the
// API directly.
type FavoritesStore struct {
	session UserSession
}

func NewFavoritesStore(session UserSession) *FavoritesStore {
	return &FavoritesStore{session: session}
}

// ListPage fetches a single saved-tracks page. Ordering is whatever Spotify
// returns, which is save recency.
func (f *FavoritesStore) ListPage(ctx context.Context, limit, offset int) ([]models.Track, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > maxTracksPerRequest {
		limit = maxTracksPerRequest
	}
	if offset < 0 {
		offset = 0
	}

	api, err := f.session.API()
	if err != nil {
		return nil, err
	}

	page, err := api.CurrentUsersTracks(ctx, spotifyLib.Limit(limit), spotifyLib.Offset(offset))
	if err != nil {
		return nil, fmt.Errorf("CurrentUsersTracks: %w", err)
	}
	if page == nil {
		return nil, nil
	}

	return savedTracksToModels(page.Tracks), nil
}

// ListAll walks every saved-tracks page sequentially. It stops on the first
// short page, or at the page cap, in which case the partial result gathered
// so far is returned. Slow for large libraries; callers accept the latency.
func (f *FavoritesStore) ListAll(ctx context.Context) ([]models.Track, error) {
	api, err := f.session.API()
	if err != nil {
		return nil, err
	}

	var all []models.Track
	offset := 0

	for page := 1; ; page++ {
		results, err := api.CurrentUsersTracks(ctx, spotifyLib.Limit(maxTracksPerRequest), spotifyLib.Offset(offset))
		if err != nil {
			return nil, fmt.Errorf("CurrentUsersTracks page %d: %w", page, err)
		}
		if results == nil || len(results.Tracks) == 0 {
			break
		}

		all = append(all, savedTracksToModels(results.Tracks)...)

		if len(results.Tracks) < maxTracksPerRequest {
			break
		}
		if page >= maxListAllPages {
			logrus.WithField("pages", page).Error("Saved tracks pagination cap reached, returning partial result")
			break
		}

		offset += maxTracksPerRequest
	}

	logrus.WithField("total", len(all)).Debug("Loaded all saved tracks")

	return all, nil
}

// Add saves a track to the user's library.
func (f *FavoritesStore) Add(ctx context.Context, trackID string) error {
	trackID = strings.TrimSpace(trackID)
	if trackID == "" {
		return ErrInvalidTrackID
	}

	api, err := f.session.API()
	if err != nil {
		return err
	}

	if err := api.AddTracksToLibrary(ctx, spotifyLib.ID(trackID)); err != nil {
		return fmt.Errorf("AddTracksToLibrary: %w", err)
	}
	return nil
}

// Remove deletes a track from the user's library.
func (f *FavoritesStore) Remove(ctx context.Context, trackID string) error {
	trackID = strings.TrimSpace(trackID)
	if trackID == "" {
		return ErrInvalidTrackID
	}

	api, err := f.session.API()
	if err != nil {
		return err
	}

	if err := api.RemoveTracksFromLibrary(ctx, spotifyLib.ID(trackID)); err != nil {
		return fmt.Errorf("RemoveTracksFromLibrary: %w", err)
	}
	return nil
}

// ExistsBulk checks which of the given tracks are saved, in input order.
// The API accepts at most 50 ids per call, so the input is chunked; a failed
// chunk degrades its entries to false instead of aborting the whole batch.
// Blank ids are false without an API call.
func (f *FavoritesStore) ExistsBulk(ctx context.Context, trackIDs []string) ([]bool, error) {
	results := make([]bool, len(trackIDs))
	if len(trackIDs) == 0 {
		return results, nil
	}

	api, err := f.session.API()
	if err != nil {
		return results, err
	}

	var validIdx []int
	var validIDs []spotifyLib.ID
	for i, id := range trackIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		validIdx = append(validIdx, i)
		validIDs = append(validIDs, spotifyLib.ID(id))
	}

	for start := 0; start < len(validIDs); start += maxTracksPerRequest {
		end := start + maxTracksPerRequest
		if end > len(validIDs) {
			end = len(validIDs)
		}

		saved, err := api.UserHasTracks(ctx, validIDs[start:end]...)
		if err != nil || len(saved) != end-start {
			logrus.WithError(err).WithField("chunk", start/maxTracksPerRequest+1).
				Warn("Saved-tracks contains check failed for chunk, treating as not saved")
			continue
		}

		for i, ok := range saved {
			results[validIdx[start+i]] = ok
		}
	}

	return results, nil
}

// IsSaved is the single-track convenience over ExistsBulk.
func (f *FavoritesStore) IsSaved(ctx context.Context, trackID string) (bool, error) {
	trackID = strings.TrimSpace(trackID)
	if trackID == "" {
		return false, ErrInvalidTrackID
	}

	saved, err := f.ExistsBulk(ctx, []string{trackID})
	if err != nil {
		return false, err
	}
	if len(saved) == 0 {
		return false, nil
	}
	return saved[0], nil
}

// TotalCount reads the library size from a limit=1 page envelope instead of
// fetching everything just to count it.
func (f *FavoritesStore) TotalCount(ctx context.Context) (int, error) {
	api, err := f.session.API()
	if err != nil {
		return 0, err
	}

	page, err := api.CurrentUsersTracks(ctx, spotifyLib.Limit(1))
	if err != nil {
		return 0, fmt.Errorf("CurrentUsersTracks: %w", err)
	}
	if page == nil {
		return 0, fmt.Errorf("CurrentUsersTracks: empty response")
	}

	return int(page.Total), nil
}

// savedTracksToModels converts a saved-tracks page, skipping items the API
// returned without a track body so one bad item cannot void the whole list.
func savedTracksToModels(items []spotifyLib.SavedTrack) []models.Track {
	tracks := make([]models.Track, 0, len(items))
	for _, item := range items {
		if item.FullTrack.ID == "" {
			logrus.Warn("Skipping saved track without id")
			continue
		}
		tracks = append(tracks, models.TrackFromSpotify(item.FullTrack))
	}
	return tracks
}
