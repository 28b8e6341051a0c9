package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmhub/config"
	"farmhub/internal/delivery/http/middleware"
	"farmhub/internal/delivery/http/router"
	"farmhub/internal/delivery/http/router/handler"
	deliverymiddleware "farmhub/internal/delivery/middleware"
	domainerrors "farmhub/internal/domain/errors"
	"farmhub/internal/domain/entity"
	"farmhub/internal/domain/service"
	mockSvc "farmhub/internal/mocks/service"
	mockUsecase "farmhub/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixture struct {
	echo     *echo.Echo
	tokenSvc *mockSvc.MockTokenService
	farmUC   *mockUsecase.MockFarmUsecase
}

func createTestServer(t *testing.T, withMetrics bool) *serverFixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Metrics: &config.MetricsConfig{Enabled: withMetrics, Path: "/metrics"},
		Docs:    &config.DocsConfig{Enabled: true},
	}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	tokenSvc := mockSvc.NewMockTokenService(t)
	farmUC := mockUsecase.NewMockFarmUsecase(t)

	var metrics *deliverymiddleware.MetricsMiddleware
	if withMetrics {
		var err error
		metrics, err = deliverymiddleware.NewMetricsMiddleware("farmhub_test")
		require.NoError(t, err)
	}

	e := NewEcho(ServerParams{
		Cfg:               cfg,
		Logger:            logger,
		ErrorMiddleware:   middleware.NewErrorMiddleware(logger),
		MetricsMiddleware: metrics,
		RouterParams: router.RouterParams{
			AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
				SessionUC:    mockUsecase.NewMockSessionUsecase(t),
				TokenService: tokenSvc,
				Logger:       logger,
			}),
			UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
				UserUC: mockUsecase.NewMockUserUsecase(t),
				Logger: logger,
			}),
			FarmHandler: handler.NewFarmHandler(handler.FarmHandlerParams{FarmUC: farmUC, Logger: logger}),
			AnimalHandler: handler.NewAnimalHandler(handler.AnimalHandlerParams{
				AnimalUC: mockUsecase.NewMockAnimalUsecase(t),
				Logger:   logger,
			}),
			SystemHandler: handler.NewSystemHandler(cfg),
			AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
				TokenService: tokenSvc,
				Logger:       logger,
			}),
			MetricsMiddleware: metrics,
			Config:            cfg,
		},
	})

	return &serverFixture{echo: e, tokenSvc: tokenSvc, farmUC: farmUC}
}

func (f *serverFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_ProtectedRouteRequiresToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		message string
	}{
		{name: "missing header", header: "", message: "Authorization header is missing"},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", message: "Invalid token format, must be Bearer token"},
		{name: "empty bearer", header: "Bearer ", message: "Invalid token format, must be Bearer token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestServer(t, false)
			req := httptest.NewRequest(http.MethodGet, "/farms", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}

			rec := f.do(req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
			assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		})
	}
}

func TestServer_InvalidAccessToken(t *testing.T) {
	f := createTestServer(t, false)
	f.tokenSvc.EXPECT().ValidateAccessToken("expired").Return(nil, domainerrors.ErrInvalidAccessToken)

	req := httptest.NewRequest(http.MethodGet, "/farms", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer expired")

	rec := f.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_AuthenticatedRequestReachesHandler(t *testing.T) {
	f := createTestServer(t, true)
	userID := uuid.New()

	f.tokenSvc.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: userID}, nil)
	f.farmUC.EXPECT().ListMyFarms(mock.Anything, userID).Return([]*entity.Farm{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/farms/my-farms", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")

	rec := f.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	metricsRec := f.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, metricsRec.Code)
	assert.Contains(t, metricsRec.Body.String(), `route="/farms/my-farms"`)
}

func TestServer_PublicRoutes(t *testing.T) {
	f := createTestServer(t, false)

	health := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, health.Code)

	docs := f.do(httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	assert.Equal(t, http.StatusMovedPermanently, docs.Code)
	assert.Equal(t, "/api/docs/index.html", docs.Header().Get(echo.HeaderLocation))

	metrics := f.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, metrics.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	f := createTestServer(t, false)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"request_id"`)
}
