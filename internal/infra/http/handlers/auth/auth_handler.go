// Package auth implements the Spotify authorization-code flow. The exchanged
// client lands in the shared session; there are no server-side cookies.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	spotifyLib "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.opentelemetry.io/otel/trace"
)

// Scopes cover library reads/writes, playlist management and profile access.
var Scopes = []string{
	spotifyauth.ScopeUserLibraryRead,
	spotifyauth.ScopeUserLibraryModify,
	spotifyauth.ScopePlaylistReadPrivate,
	spotifyauth.ScopePlaylistModifyPublic,
	spotifyauth.ScopePlaylistModifyPrivate,
	spotifyauth.ScopeUserReadPrivate,
}

type AuthHandler struct {
	tracer        trace.Tracer
	authenticator *spotifyauth.Authenticator
	session       UserSession

	mu    sync.Mutex
	state string
}

func New(
	tracer trace.Tracer,
	authenticator *spotifyauth.Authenticator,
	session UserSession,
) *AuthHandler {
	return &AuthHandler{
		tracer:        tracer,
		authenticator: authenticator,
		session:       session,
	}
}

// NewAuthenticator builds the authenticator used by the handler, kept here so
// main does not repeat the scope list.
func NewAuthenticator(clientID, clientSecret, redirectURL string) *spotifyauth.Authenticator {
	return spotifyauth.New(
		spotifyauth.WithClientID(clientID),
		spotifyauth.WithClientSecret(clientSecret),
		spotifyauth.WithRedirectURL(redirectURL),
		spotifyauth.WithScopes(Scopes...),
	)
}

// Login serves GET /login and redirects to the Spotify consent page with a
// fresh state value.
func (h *AuthHandler) Login(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "AuthHandler.Login")
	defer span.End()

	state, err := randomState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.mu.Lock()
	h.state = state
	h.mu.Unlock()

	c.Redirect(http.StatusFound, h.authenticator.AuthURL(state))
}

// Callback serves GET /callback, exchanges the authorization code and
// installs the user client in the session.
func (h *AuthHandler) Callback(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "AuthHandler.Callback")
	defer span.End()

	h.mu.Lock()
	state := h.state
	h.state = ""
	h.mu.Unlock()

	if state == "" || c.Query("state") != state {
		c.JSON(http.StatusForbidden, gin.H{"error": "state mismatch"})
		return
	}

	token, err := h.authenticator.Token(ctx, state, c.Request)
	if err != nil {
		logrus.WithError(err).Error("Token exchange failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "token exchange failed"})
		return
	}

	client := spotifyLib.New(h.authenticator.Client(ctx, token))

	user, err := client.CurrentUser(ctx)
	if err != nil {
		logrus.WithError(err).Error("Fetching user profile failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "spotify client error"})
		return
	}

	h.session.Authenticate(client, user.ID)
	logrus.WithField("user_id", user.ID).Info("User logged in")

	c.Redirect(http.StatusFound, "/")
}

// Logout serves GET /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "AuthHandler.Logout")
	defer span.End()

	h.session.Clear()

	c.JSON(http.StatusOK, gin.H{"logged_in": false})
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
