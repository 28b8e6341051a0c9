package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "farmhub/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		inbound  string
		wantSame bool
	}{
		{name: "reuses inbound id", inbound: "req-123", wantSame: true},
		{name: "mints id when missing", inbound: ""},
		{name: "replaces oversized id", inbound: strings.Repeat("x", 200)},
		{name: "replaces id with spaces", inbound: "req 123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.inbound != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.inbound)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenInContext string
			err := mw.Process(func(c echo.Context) error {
				seenInContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, seenInContext)
			if tt.wantSame {
				assert.Equal(t, tt.inbound, got)
			} else {
				assert.NotEqual(t, tt.inbound, got)
			}
		})
	}
}
