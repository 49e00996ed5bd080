// Package response renders JSON bodies for the API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the envelope of every failed request.
type ErrorResponse struct {
	Message string    `json:"message"`
	Kind    string    `json:"kind,omitempty"`
	Errors  []string  `json:"errors,omitempty"`
	Error   *struct{} `json:"error,omitempty"` // always {} on 5xx
}

// MessageResponse carries a single informational message.
type MessageResponse struct {
	Message string `json:"message"`
}

// Success returns a successful JSON response.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Created answers 201 with a Location header and no body.
func Created(c echo.Context, location string) error {
	c.Response().Header().Set(echo.HeaderLocation, location)

	return c.NoContent(http.StatusCreated)
}

// NoContent answers 204.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error returns an error response. Details are dropped for 5xx errors.
func Error(c echo.Context, statusCode int, kind string, message string, details []string) error {
	body := ErrorResponse{
		Message: message,
		Kind:    kind,
		Errors:  details,
	}
	if statusCode >= http.StatusInternalServerError {
		body.Errors = nil
		body.Error = &struct{}{}
	}

	return c.JSON(statusCode, body)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, kind string, message string) error {
	return Error(c, http.StatusInternalServerError, kind, message, nil)
}
