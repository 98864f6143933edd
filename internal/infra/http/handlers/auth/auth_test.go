package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	handler "github.com/rhythmbox/rhythmbox/internal/infra/http/handlers/auth"
	spotifyrepo "github.com/rhythmbox/rhythmbox/internal/infra/repository/spotify"
)

type fakeSession struct {
	authenticated bool
	cleared       bool
}

func (f *fakeSession) Authenticate(_ spotifyrepo.API, _ string) { f.authenticated = true }
func (f *fakeSession) Clear()                                   { f.cleared = true }

func newTestContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return ctx, recorder
}

func newHandler(session *fakeSession) *handler.AuthHandler {
	authenticator := handler.NewAuthenticator("client-id", "client-secret",
		"http://localhost:1323/callback")
	return handler.New(otel.Tracer("test"), authenticator, session)
}

func TestAuthHandler_LoginRedirectsToConsentPage(t *testing.T) {
	ctx, recorder := newTestContext(t, "/login")

	h := newHandler(&fakeSession{})
	h.Login(ctx)

	require.Equal(t, http.StatusFound, recorder.Code)
	location := recorder.Header().Get("Location")
	assert.Contains(t, location, "accounts.spotify.com/authorize")
	assert.Contains(t, location, "client_id=client-id")
	assert.Contains(t, location, "state=")
	assert.Contains(t, location, "user-library-modify")
}

func TestAuthHandler_CallbackRejectsBadState(t *testing.T) {
	t.Run("no login initiated", func(t *testing.T) {
		ctx, recorder := newTestContext(t, "/callback?state=whatever&code=abc")

		session := &fakeSession{}
		h := newHandler(session)
		h.Callback(ctx)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.False(t, session.authenticated)
	})

	t.Run("state mismatch after login", func(t *testing.T) {
		session := &fakeSession{}
		h := newHandler(session)

		loginCtx, loginRecorder := newTestContext(t, "/login")
		h.Login(loginCtx)
		require.Equal(t, http.StatusFound, loginRecorder.Code)

		ctx, recorder := newTestContext(t, "/callback?state=forged&code=abc")
		h.Callback(ctx)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.False(t, session.authenticated)
	})
}

func TestAuthHandler_LogoutClearsSession(t *testing.T) {
	ctx, recorder := newTestContext(t, "/logout")

	session := &fakeSession{}
	h := newHandler(session)
	h.Logout(ctx)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, session.cleared)
	assert.JSONEq(t, `{"logged_in":false}`, recorder.Body.String())
}
