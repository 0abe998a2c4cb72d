package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auth-gate/internal/adapter/gateway"
	"auth-gate/internal/domain"
	"auth-gate/internal/driver"
	"auth-gate/internal/usecase"
	"auth-gate/utils/logger"
)

// TestAuthHandler_CacheAsideFlow wires the real Redis cache, event
// stream and member client together: the first call resolves through
// the directory and caches the record, the second is served entirely
// from Redis, and a rejection publishes to the stream.
func TestAuthHandler_CacheAsideFlow(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	var directoryHits atomic.Int64
	memberServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		directoryHits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"userId":"u1","tier":"gold"}`))
	}))
	t.Cleanup(memberServer.Close)

	redisDriver := driver.NewRedisDriverWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = redisDriver.Close() })

	log := slog.Default()
	memberClient := driver.NewMemberClient(memberServer.URL, time.Second)

	newHandler := func(policy domain.RejectionPolicy) *AuthHandler {
		uc := usecase.NewAuthenticateUser(
			gateway.NewCacheGateway(redisDriver, 0),
			gateway.NewDirectoryGateway(memberClient),
			policy,
			gateway.NewEventGateway(redisDriver, "auth.unauthorized", log),
			nil,
			log,
		)
		return NewAuthHandler(uc, logger.NewTransactionLogger(log))
	}

	do := func(h *AuthHandler, body string) *httptest.ResponseRecorder {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/authenticate", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		require.NoError(t, h.Handle(e.NewContext(req, rec)))
		return rec
	}

	h := newHandler(allowAll{})

	// First call: reaches the directory, caches the record.
	rec := do(h, `{"userId":"u1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"userId":"u1","tier":"gold"}`, rec.Body.String())
	assert.Equal(t, int64(1), directoryHits.Load())

	cached, err := mr.Get("u1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"userId":"u1","tier":"gold"}`, cached)

	// Second call: identical response from the cache, no new lookup.
	rec = do(h, `{"userId":"u1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"userId":"u1","tier":"gold"}`, rec.Body.String())
	assert.Equal(t, int64(1), directoryHits.Load())

	// Rejection: 401 echoing the input, one event on the stream.
	rec = do(newHandler(rejectAll{}), `{"userId":"u2"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"userId":"u2"}`, rec.Body.String())

	entries, err := mr.Stream("auth.unauthorized")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, int64(1), directoryHits.Load(), "rejection must not consult the directory")
}
