// Package handler contains the HTTP handlers of the marketplace API.
package handler

import (
	domainerrors "teka/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathUUID parses a UUID path parameter into a validation error on failure.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}
