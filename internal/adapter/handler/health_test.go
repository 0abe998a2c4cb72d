package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPinger implements Pinger.
type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error { return s.err }

func doHealth(t *testing.T, pinger Pinger) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h := NewHealthHandler(pinger)
	require.NoError(t, h.Handle(e.NewContext(req, rec)))
	return rec
}

func TestHealthHandler_Healthy(t *testing.T) {
	rec := doHealth(t, stubPinger{})

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["healthy"])
	assert.Equal(t, "connected", body["redis_status"])
}

func TestHealthHandler_RedisDown(t *testing.T) {
	rec := doHealth(t, stubPinger{err: errors.New("connection refused")})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["healthy"])
	assert.Equal(t, "disconnected", body["redis_status"])
}
