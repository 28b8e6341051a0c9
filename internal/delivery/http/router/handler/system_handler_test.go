package handler

import (
	"net/http"
	"testing"
	"time"

	"farmhub/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemHandler_Welcome(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Version = "1.2.3"
	h := NewSystemHandler(cfg)
	e := newTestEcho()
	e.GET("/", h.Welcome)

	rec := doRequest(e, http.MethodGet, "/", "", uuid.Nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, WelcomeResponse{
		Message: "Welcome to the Farm Management API",
		Version: "1.2.3",
		APIDocs: "/api/docs",
	}, decodeBody[WelcomeResponse](t, rec))
}

func TestSystemHandler_Health(t *testing.T) {
	started := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := &SystemHandler{
		startedAt: started,
		now:       func() time.Time { return started.Add(90 * time.Second) },
	}
	e := newTestEcho()
	e.GET("/health", h.Health)

	rec := doRequest(e, http.MethodGet, "/health", "", uuid.Nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[HealthResponse](t, rec)
	assert.Equal(t, "ok", body.Status)
	assert.InDelta(t, 90, body.Uptime, 0.001)
}
