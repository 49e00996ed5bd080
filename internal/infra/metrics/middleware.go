package metrics

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "restapi/internal/domain/errors"
	"restapi/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Middleware records request count and latency per route template.
//
// Handler errors are rendered after the middleware chain returns, so the
// status is derived from the returned error instead of the response writer.
func Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		route := c.Path()
		if route == "" {
			route = RouteUnmatched
		}
		method := c.Request().Method

		RequestsTotal.WithLabelValues(method, route, strconv.Itoa(StatusOf(c, err))).Inc()
		RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return err
	}
}

// StatusOf returns the status code the response will carry once err is rendered.
func StatusOf(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code == http.StatusMethodNotAllowed {
			return http.StatusNotFound
		}

		return httpErr.Code
	}

	return http.StatusInternalServerError
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
