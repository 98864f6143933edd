package playlists

import (
	spotifyrepo "github.com/rhythmbox/rhythmbox/internal/infra/repository/spotify"
)

// Session yields the authorized Spotify client for the logged-in user.
type Session interface {
	API() (spotifyrepo.API, error)
	UserID() string
}
