package middleware

import (
	"strconv"

	domainerrors "restapi/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// RequireIDParam answers 404 unless the named path parameter is a positive
// integer. It runs before the gate so a malformed path never asks for credentials.
func RequireIDParam(name string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, err := ParseID(c.Param(name)); err != nil {
				return err
			}

			return next(c)
		}
	}
}

// ParseID parses a positive integer path id.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrRouteNotFound
	}

	return uint(id), nil
}
