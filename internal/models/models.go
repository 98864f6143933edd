// Package models holds the plain records the API serves. They are shallow
// projections of Spotify payloads, built once per response and never mutated.
package models

import (
	"strings"

	"github.com/zmb3/spotify/v2"
)

type Track struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Artist     string `json:"artist"`
	Album      string `json:"album"`
	SpotifyURL string `json:"spotify_url"`
	ImageURL   string `json:"image_url"`
	PreviewURL string `json:"preview_url,omitempty"`
}

type Artist struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ImageURL   string   `json:"image_url"`
	Genres     []string `json:"genres"`
	Popularity int      `json:"popularity"`
	Followers  int      `json:"followers"`
	SpotifyURL string   `json:"spotify_url"`
	TopTracks  []Track  `json:"top_tracks,omitempty"`
}

type Album struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Artist      string `json:"artist"`
	TotalTracks int    `json:"total_tracks"`
	SpotifyURL  string `json:"spotify_url"`
	ImageURL    string `json:"image_url"`
	ReleaseDate string `json:"release_date,omitempty"`
}

type Playlist struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	TotalTracks int     `json:"total_tracks"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description,omitempty"`
	SpotifyURL  string  `json:"spotify_url"`
	Tracks      []Track `json:"tracks,omitempty"`
}

func joinArtistNames(artists []spotify.SimpleArtist) string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

func firstImageURL(images []spotify.Image) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].URL
}

// TrackFromSpotify builds a Track record from a Spotify track payload.
// Missing artwork degrades to an empty string, never null.
func TrackFromSpotify(t spotify.FullTrack) Track {
	return Track{
		ID:         string(t.ID),
		Name:       t.Name,
		Artist:     joinArtistNames(t.Artists),
		Album:      t.Album.Name,
		SpotifyURL: t.ExternalURLs["spotify"],
		ImageURL:   firstImageURL(t.Album.Images),
		PreviewURL: t.PreviewURL,
	}
}

// ArtistFromSpotify builds an Artist record. TopTracks is left empty; it is
// populated lazily by a separate top-tracks call.
func ArtistFromSpotify(a spotify.FullArtist) Artist {
	genres := a.Genres
	if genres == nil {
		genres = []string{}
	}
	return Artist{
		ID:         string(a.ID),
		Name:       a.Name,
		ImageURL:   firstImageURL(a.Images),
		Genres:     genres,
		Popularity: int(a.Popularity),
		Followers:  int(a.Followers.Count),
		SpotifyURL: a.ExternalURLs["spotify"],
	}
}

func AlbumFromSpotify(a spotify.SimpleAlbum) Album {
	return Album{
		ID:          string(a.ID),
		Name:        a.Name,
		Artist:      joinArtistNames(a.Artists),
		TotalTracks: int(a.TotalTracks),
		SpotifyURL:  a.ExternalURLs["spotify"],
		ImageURL:    firstImageURL(a.Images),
		ReleaseDate: a.ReleaseDate,
	}
}

func PlaylistFromSpotify(p spotify.SimplePlaylist) Playlist {
	return Playlist{
		ID:          string(p.ID),
		Name:        p.Name,
		TotalTracks: int(p.Tracks.Total),
		ImageURL:    firstImageURL(p.Images),
		SpotifyURL:  p.ExternalURLs["spotify"],
	}
}

// PlaylistFromFull builds a Playlist including its description and tracks,
// skipping items the API returned without an ID.
func PlaylistFromFull(p *spotify.FullPlaylist) Playlist {
	out := Playlist{
		ID:          string(p.ID),
		Name:        p.Name,
		TotalTracks: int(p.Tracks.Total),
		ImageURL:    firstImageURL(p.Images),
		Description: p.Description,
		SpotifyURL:  p.ExternalURLs["spotify"],
	}
	for _, item := range p.Tracks.Tracks {
		if item.Track.ID == "" {
			continue
		}
		out.Tracks = append(out.Tracks, TrackFromSpotify(item.Track))
	}
	return out
}
