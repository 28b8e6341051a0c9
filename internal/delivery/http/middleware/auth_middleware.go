package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "farmhub/internal/delivery/context"
	domainerrors "farmhub/internal/domain/errors"
	"farmhub/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthMiddleware validates bearer access tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenService, logger: params.Logger}
}

// Authenticate rejects requests without a valid access token and stores the
// caller's ID on the context for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithMessage("Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return domainerrors.ErrUnauthorized.WithMessage("Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Access token rejected", slog.Any("error", err))

			return domainerrors.ErrInvalidAccessToken
		}

		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}
