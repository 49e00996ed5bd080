package middleware

import (
	"log/slog"
	"net/http"

	"restapi/config"
	"restapi/internal/delivery/api/response"
	deliverycontext "restapi/internal/delivery/context"
	domainerrors "restapi/internal/domain/errors"
	"restapi/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders every error leaving a handler as the JSON envelope.
type ErrorMiddleware struct {
	logger   *slog.Logger
	logStack bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:   logger,
		logStack: cfg != nil && cfg.Env.EnableGlobalErrorLogging,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.internal(c, err)

			return
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch {
		case httpErr.Code == http.StatusNotFound || httpErr.Code == http.StatusMethodNotAllowed:
			notFound := domainerrors.ErrRouteNotFound
			_ = response.Error(c, notFound.HTTPCode(), notFound.ErrorCode(), notFound.Message(), nil)
		case httpErr.Code >= http.StatusInternalServerError:
			m.internal(c, err)
		default:
			message := http.StatusText(httpErr.Code)
			if msg, ok := httpErr.Message.(string); ok && msg != "" {
				message = msg
			}
			_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)
		}

		return
	}

	m.internal(c, err)
}

// internal logs an unexpected fault and answers a generic 500.
func (m *ErrorMiddleware) internal(c echo.Context, err error) {
	req := c.Request()
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)

	attrs := []any{
		slog.String("error", err.Error()),
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
	}
	if m.logStack {
		attrs = append(attrs, slog.String("stack", errors.Verbose(err)))
	}
	logger.Error("Unhandled error", attrs...)

	internalErr := domainerrors.ErrInternalError
	_ = response.InternalServerError(c, internalErr.ErrorCode(), internalErr.Message())
}
