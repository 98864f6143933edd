package spotify

import (
	"errors"
	"sync"
)

var ErrNotAuthenticated = errors.New("spotify: user not authenticated")

// Session holds the user-authorized Spotify client produced by the OAuth
// callback. It is shared across requests, so access goes through a RWMutex;
// there is no other cross-request mutable state in the process.
type Session struct {
	mu     sync.RWMutex
	client API
	userID string
}

func NewSession() *Session {
	return &Session{}
}

// Authenticate installs the authorized client, replacing any previous login.
func (s *Session) Authenticate(client API, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = client
	s.userID = userID
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = nil
	s.userID = ""
}

// API returns the authorized client or ErrNotAuthenticated when nobody is
// logged in.
func (s *Session) API() (API, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.client == nil {
		return nil, ErrNotAuthenticated
	}
	return s.client, nil
}

func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client != nil
}
