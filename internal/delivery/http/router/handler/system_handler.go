package handler

import (
	"net/http"
	"time"

	"farmhub/config"
	"farmhub/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// SystemHandler serves the unauthenticated welcome and health endpoints.
type SystemHandler struct {
	version   string
	startedAt time.Time
	now       func() time.Time
}

// NewSystemHandler is the constructor for SystemHandler.
func NewSystemHandler(cfg *config.Config) *SystemHandler {
	return &SystemHandler{
		version:   cfg.Env.Version,
		startedAt: time.Now(),
		now:       time.Now,
	}
}

// WelcomeResponse is the body of GET /.
type WelcomeResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	APIDocs string `json:"apiDocs"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime"` // Seconds since start.
}

// Welcome godoc
//
//	@Summary	API banner
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	WelcomeResponse
//	@Router		/ [get]
func (h *SystemHandler) Welcome(c echo.Context) error {
	return response.Success(c, http.StatusOK, &WelcomeResponse{
		Message: "Welcome to the Farm Management API",
		Version: h.version,
		APIDocs: "/api/docs",
	})
}

// Health godoc
//
//	@Summary	Liveness probe
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/health [get]
func (h *SystemHandler) Health(c echo.Context) error {
	return response.Success(c, http.StatusOK, &HealthResponse{
		Status: "ok",
		Uptime: h.now().Sub(h.startedAt).Seconds(),
	})
}
