package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	deliverycontext "restapi/internal/delivery/context"
	"restapi/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newJSONContext builds an echo context for a JSON request, optionally with a principal.
func newJSONContext(method, target, body string, principal *entity.User) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if principal != nil {
		deliverycontext.SetPrincipal(c, principal)
	}

	return c, rec
}

func ptr(s string) *string {
	return &s
}

