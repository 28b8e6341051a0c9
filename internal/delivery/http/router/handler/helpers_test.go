package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "farmhub/internal/delivery/context"
	"farmhub/internal/delivery/http/middleware"
	"farmhub/internal/delivery/http/validator"
	deliverymiddleware "farmhub/internal/delivery/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testUserHeader = "X-Test-User"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho mirrors the production chain, except that authentication
// trusts the X-Test-User header.
func newTestEcho() *echo.Echo {
	logger := newDiscardLogger()
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Use(deliverymiddleware.NewRequestIDMiddleware(logger).Process)
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if raw := c.Request().Header.Get(testUserHeader); raw != "" {
				deliverycontext.SetUserID(c, uuid.MustParse(raw))
			}

			return next(c)
		}
	})

	return e
}

func doRequest(e *echo.Echo, method, target, body string, userID uuid.UUID) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if userID != uuid.Nil {
		req.Header.Set(testUserHeader, userID.String())
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details []struct {
			Field string `json:"field"`
			Rule  string `json:"rule"`
		} `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

