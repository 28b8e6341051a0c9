package handler

import (
	deliverycontext "farmhub/internal/delivery/context"
	domainerrors "farmhub/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// callerID returns the authenticated user set by AuthMiddleware.
func callerID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized.WithMessage("Invalid user ID in token")
	}

	return userID, nil
}

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrBadRequest.WithMessage("Invalid %s: must be a UUID", name)
	}

	return id, nil
}

// bindAndValidate decodes the request into req and checks its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrBadRequest.WithMessage("Invalid request body")
	}

	return errors.WithStack(c.Validate(req))
}
