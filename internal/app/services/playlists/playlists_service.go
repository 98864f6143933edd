// Package playlists manages the user's playlists. Reads are memoized with
// the playlist TTL; every write is followed by a best-effort invalidation of
// all playlist cache entries so the next read sees fresh data.
package playlists

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	spotifyLib "github.com/zmb3/spotify/v2"
	"go.opentelemetry.io/otel/trace"

	"github.com/rhythmbox/rhythmbox/internal/infra/repository/cache"
	"github.com/rhythmbox/rhythmbox/internal/models"
)

var (
	ErrInvalidName       = errors.New("playlists: name must not be blank")
	ErrInvalidPlaylistID = errors.New("playlists: playlist id must not be blank")
)

const listPageSize = 50

type createArgs struct {
	Name        string
	Description string
	Public      bool
}

type trackArgs struct {
	PlaylistID string
	TrackIDs   []string
}

type renameArgs struct {
	PlaylistID string
	Name       string
}

type Service struct {
	tracer  trace.Tracer
	session Session

	list         func(context.Context, string) ([]models.Playlist, error)
	get          func(context.Context, string) (*models.Playlist, error)
	create       func(context.Context, createArgs) (*models.Playlist, error)
	rename       func(context.Context, renameArgs) (bool, error)
	delete       func(context.Context, string) (bool, error)
	addTracks    func(context.Context, trackArgs) (string, error)
	removeTracks func(context.Context, trackArgs) (string, error)
}

// New wires memoized reads and invalidating writes. A nil store disables
// both and the service talks straight to Spotify.
func New(tracer trace.Tracer, session Session, store cache.Store) *Service {
	s := &Service{
		tracer:  tracer,
		session: session,
	}

	s.list = s.fetchList
	s.get = s.fetchGet
	s.create = s.doCreate
	s.rename = s.doRename
	s.delete = s.doDelete
	s.addTracks = s.doAddTracks
	s.removeTracks = s.doRemoveTracks

	if store != nil {
		s.list = cache.Memoize(store, func(userID string) string {
			return store.KeyFor("user_playlists", []string{userID}, nil)
		}, cache.TTLPlaylist, s.fetchList)
		s.get = cache.Memoize(store, func(id string) string {
			return store.KeyFor("playlist_details", []string{id}, nil)
		}, cache.TTLPlaylist, s.fetchGet)

		pattern := store.Namespace() + ":*playlist*"
		s.create = cache.InvalidateAfter(store, pattern, s.doCreate)
		s.rename = cache.InvalidateAfter(store, pattern, s.doRename)
		s.delete = cache.InvalidateAfter(store, pattern, s.doDelete)
		s.addTracks = cache.InvalidateAfter(store, pattern, s.doAddTracks)
		s.removeTracks = cache.InvalidateAfter(store, pattern, s.doRemoveTracks)
	}

	return s
}

// List returns the user's playlists.
func (s *Service) List(ctx context.Context) ([]models.Playlist, error) {
	ctx, span := s.tracer.Start(ctx, "PlaylistsService.List")
	defer span.End()

	return s.list(ctx, s.session.UserID())
}

// Get returns one playlist with its tracks.
func (s *Service) Get(ctx context.Context, playlistID string) (*models.Playlist, error) {
	ctx, span := s.tracer.Start(ctx, "PlaylistsService.Get")
	defer span.End()

	playlistID = strings.TrimSpace(playlistID)
	if playlistID == "" {
		return nil, ErrInvalidPlaylistID
	}

	return s.get(ctx, playlistID)
}

// Create makes a new playlist for the logged-in user.
func (s *Service) Create(ctx context.Context, name, description string, public bool) (*models.Playlist, error) {
	ctx, span := s.tracer.Start(ctx, "PlaylistsService.Create")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	playlist, err := s.create(ctx, createArgs{Name: name, Description: description, Public: public})
	if err != nil {
		logrus.WithError(err).WithField("name", name).Error("Failed to create playlist")
	}
	return playlist, err
}

// Rename changes a playlist's name, leaving everything else untouched.
func (s *Service) Rename(ctx context.Context, playlistID, name string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "PlaylistsService.Rename")
	defer span.End()

	playlistID = strings.TrimSpace(playlistID)
	if playlistID == "" {
		return false, ErrInvalidPlaylistID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return false, ErrInvalidName
	}

	return s.rename(ctx, renameArgs{PlaylistID: playlistID, Name: name})
}

// Delete unfollows the playlist, which is how Spotify deletes one from the
// user's library.
func (s *Service) Delete(ctx context.Context, playlistID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "PlaylistsService.Delete")
	defer span.End()

	playlistID = strings.TrimSpace(playlistID)
	if playlistID == "" {
		return false, ErrInvalidPlaylistID
	}

	return s.delete(ctx, playlistID)
}

// AddTracks appends tracks to a playlist and returns the new snapshot id.
func (s *Service) AddTracks(ctx context.Context, playlistID string, trackIDs []string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "PlaylistsService.AddTracks")
	defer span.End()

	if strings.TrimSpace(playlistID) == "" {
		return "", ErrInvalidPlaylistID
	}

	return s.addTracks(ctx, trackArgs{PlaylistID: playlistID, TrackIDs: trackIDs})
}

// RemoveTracks deletes tracks from a playlist and returns the new snapshot id.
func (s *Service) RemoveTracks(ctx context.Context, playlistID string, trackIDs []string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "PlaylistsService.RemoveTracks")
	defer span.End()

	if strings.TrimSpace(playlistID) == "" {
		return "", ErrInvalidPlaylistID
	}

	return s.removeTracks(ctx, trackArgs{PlaylistID: playlistID, TrackIDs: trackIDs})
}

func (s *Service) fetchList(ctx context.Context, _ string) ([]models.Playlist, error) {
	api, err := s.session.API()
	if err != nil {
		return nil, err
	}

	page, err := api.CurrentUsersPlaylists(ctx, spotifyLib.Limit(listPageSize))
	if err != nil {
		return nil, fmt.Errorf("CurrentUsersPlaylists: %w", err)
	}
	if page == nil {
		return nil, nil
	}

	playlists := make([]models.Playlist, 0, len(page.Playlists))
	for _, p := range page.Playlists {
		if p.ID == "" {
			logrus.Warn("Skipping playlist without id")
			continue
		}
		playlists = append(playlists, models.PlaylistFromSpotify(p))
	}
	return playlists, nil
}

func (s *Service) fetchGet(ctx context.Context, playlistID string) (*models.Playlist, error) {
	api, err := s.session.API()
	if err != nil {
		return nil, err
	}

	playlist, err := api.GetPlaylist(ctx, spotifyLib.ID(playlistID))
	if err != nil {
		return nil, fmt.Errorf("GetPlaylist: %w", err)
	}
	if playlist == nil {
		return nil, nil
	}

	converted := models.PlaylistFromFull(playlist)
	return &converted, nil
}

func (s *Service) doCreate(ctx context.Context, a createArgs) (*models.Playlist, error) {
	api, err := s.session.API()
	if err != nil {
		return nil, err
	}

	playlist, err := api.CreatePlaylistForUser(ctx, s.session.UserID(), a.Name, a.Description, a.Public, false)
	if err != nil {
		return nil, fmt.Errorf("CreatePlaylistForUser: %w", err)
	}

	converted := models.PlaylistFromFull(playlist)
	return &converted, nil
}

func (s *Service) doRename(ctx context.Context, a renameArgs) (bool, error) {
	api, err := s.session.API()
	if err != nil {
		return false, err
	}

	if err := api.ChangePlaylistName(ctx, spotifyLib.ID(a.PlaylistID), a.Name); err != nil {
		return false, fmt.Errorf("ChangePlaylistName: %w", err)
	}
	return true, nil
}

func (s *Service) doDelete(ctx context.Context, playlistID string) (bool, error) {
	api, err := s.session.API()
	if err != nil {
		return false, err
	}

	if err := api.UnfollowPlaylist(ctx, spotifyLib.ID(playlistID)); err != nil {
		return false, fmt.Errorf("UnfollowPlaylist: %w", err)
	}
	return true, nil
}

func (s *Service) doAddTracks(ctx context.Context, a trackArgs) (string, error) {
	api, err := s.session.API()
	if err != nil {
		return "", err
	}

	snapshot, err := api.AddTracksToPlaylist(ctx, spotifyLib.ID(a.PlaylistID), toSpotifyIDs(a.TrackIDs)...)
	if err != nil {
		return "", fmt.Errorf("AddTracksToPlaylist: %w", err)
	}
	return snapshot, nil
}

func (s *Service) doRemoveTracks(ctx context.Context, a trackArgs) (string, error) {
	api, err := s.session.API()
	if err != nil {
		return "", err
	}

	snapshot, err := api.RemoveTracksFromPlaylist(ctx, spotifyLib.ID(a.PlaylistID), toSpotifyIDs(a.TrackIDs)...)
	if err != nil {
		return "", fmt.Errorf("RemoveTracksFromPlaylist: %w", err)
	}
	return snapshot, nil
}

func toSpotifyIDs(ids []string) []spotifyLib.ID {
	out := make([]spotifyLib.ID, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		out = append(out, spotifyLib.ID(id))
	}
	return out
}
