package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"restapi/config"
	deliverycontext "restapi/internal/delivery/context"
	domainerrors "restapi/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

	h := mw.Process(func(c echo.Context) error {
		logger := deliverycontext.GetLogger(c.Request().Context())
		require.NotNil(t, logger)
		logger.Info("handled")

		return c.NoContent(http.StatusOK)
	})

	t.Run("generated", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, h(c))
		generated := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.Len(t, generated, 36)
		assert.Contains(t, buf.String(), "request_id="+generated)
	})

	t.Run("propagated", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)

		require.NoError(t, h(c))
		assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Contains(t, buf.String(), "request_id=client-id")
	})
}

func TestLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true
	mw := NewLoggerMiddleware(logger, cfg)

	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/api/courses", nil), httptest.NewRecorder())
	err := mw.Handle(func(echo.Context) error {
		return domainerrors.ErrAccessDenied
	})(c)

	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
	assert.Contains(t, buf.String(), "status=401")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	mw := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), &config.Config{})

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))

	assert.Empty(t, buf.String())
}
