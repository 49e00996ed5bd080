package middleware

import (
	"encoding/base64"
	"log/slog"
	"strings"

	deliverycontext "restapi/internal/delivery/context"
	"restapi/internal/domain/entity"
	domainerrors "restapi/internal/domain/errors"
	"restapi/internal/errors"
	"restapi/internal/infra/metrics"
	"restapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const schemeBasic = "basic"

// ParseBasicCredentials decodes an Authorization header using the Basic
// scheme. The scheme name is case-insensitive and the payload splits on the
// first colon, so secrets may contain colons.
func ParseBasicCredentials(header string) (entity.CredentialPair, bool) {
	scheme, payload, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, schemeBasic) {
		return entity.CredentialPair{}, false
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return entity.CredentialPair{}, false
	}

	identifier, secret, found := strings.Cut(string(decoded), ":")
	if !found || identifier == "" {
		return entity.CredentialPair{}, false
	}

	return entity.CredentialPair{Identifier: identifier, Secret: secret}, true
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware gates routes behind per-request Basic credentials.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC, logger: params.Logger}
}

// Authenticate resolves the principal or stops the request with 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		creds, ok := ParseBasicCredentials(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			metrics.AuthAttemptsTotal.WithLabelValues(metrics.AuthOutcomeDenied).Inc()
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Authentication denied: credentials missing or malformed")

			return domainerrors.ErrAccessDenied.WrapMessage("credentials missing or malformed")
		}

		user, err := m.authUC.Authenticate(ctx, creds)
		if err != nil {
			outcome := metrics.AuthOutcomeError
			if errors.Is(err, domainerrors.ErrAccessDenied) {
				outcome = metrics.AuthOutcomeDenied
			}
			metrics.AuthAttemptsTotal.WithLabelValues(outcome).Inc()

			return err
		}

		metrics.AuthAttemptsTotal.WithLabelValues(metrics.AuthOutcomeAuthorized).Inc()
		deliverycontext.SetPrincipal(c, user)

		return next(c)
	}
}

// Optional runs the gate only when the request carries an Authorization header.
func (m *AuthMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	gated := m.Authenticate(next)

	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
			return next(c)
		}

		return gated(c)
	}
}
