package system_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"

	handler "github.com/rhythmbox/rhythmbox/internal/infra/http/handlers/system"
	"github.com/rhythmbox/rhythmbox/internal/infra/repository/cache"
)

type fakeCacheAdmin struct {
	enabled bool
	cleared bool
	stats   cache.Stats
}

func (f *fakeCacheAdmin) Enabled(context.Context) bool      { return f.enabled }
func (f *fakeCacheAdmin) Stats(context.Context) cache.Stats { return f.stats }
func (f *fakeCacheAdmin) ClearAll(context.Context) bool {
	f.cleared = true
	return f.enabled
}

type fakeSession struct {
	loggedIn bool
	userID   string
}

func (f *fakeSession) Authenticated() bool { return f.loggedIn }
func (f *fakeSession) UserID() string      { return f.userID }

func newTestContext(t *testing.T, method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(method, target, nil)
	return ctx, recorder
}

func TestSystemHandler_Health(t *testing.T) {
	t.Run("cache down still healthy", func(t *testing.T) {
		ctx, recorder := newTestContext(t, http.MethodGet, "/health")

		h := handler.New(otel.Tracer("test"), &fakeCacheAdmin{enabled: false}, &fakeSession{})
		h.Health(ctx)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t,
			`{"status":"ok","cache_enabled":false,"logged_in":false}`,
			recorder.Body.String())
	})

	t.Run("logged in with cache", func(t *testing.T) {
		ctx, recorder := newTestContext(t, http.MethodGet, "/health")

		h := handler.New(otel.Tracer("test"),
			&fakeCacheAdmin{enabled: true}, &fakeSession{loggedIn: true, userID: "user-1"})
		h.Health(ctx)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t,
			`{"status":"ok","cache_enabled":true,"logged_in":true}`,
			recorder.Body.String())
	})
}

func TestSystemHandler_CacheStats(t *testing.T) {
	ctx, recorder := newTestContext(t, http.MethodGet, "/api/cache/stats")

	admin := &fakeCacheAdmin{enabled: true, stats: cache.Stats{
		Enabled:    true,
		TotalKeys:  4,
		Hits:       3,
		Misses:     1,
		HitRatePct: 75.0,
		MemoryUsed: "1.2M",
	}}
	h := handler.New(otel.Tracer("test"), admin, &fakeSession{})
	h.CacheStats(ctx)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"hit_rate_pct":75`)
	assert.Contains(t, recorder.Body.String(), `"total_keys":4`)
}

func TestSystemHandler_CacheClear(t *testing.T) {
	t.Run("cleared", func(t *testing.T) {
		ctx, recorder := newTestContext(t, http.MethodPost, "/api/cache/clear")

		admin := &fakeCacheAdmin{enabled: true}
		h := handler.New(otel.Tracer("test"), admin, &fakeSession{})
		h.CacheClear(ctx)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, admin.cleared)
	})

	t.Run("store unavailable", func(t *testing.T) {
		ctx, recorder := newTestContext(t, http.MethodPost, "/api/cache/clear")

		h := handler.New(otel.Tracer("test"), &fakeCacheAdmin{enabled: false}, &fakeSession{})
		h.CacheClear(ctx)

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
	})
}
