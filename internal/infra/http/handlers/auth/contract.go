package auth

import (
	spotifyrepo "github.com/rhythmbox/rhythmbox/internal/infra/repository/spotify"
)

// UserSession receives the client produced by a completed OAuth exchange.
type UserSession interface {
	Authenticate(client spotifyrepo.API, userID string)
	Clear()
}
