package impl

import (
	"context"
	"log/slog"

	deliverycontext "restapi/internal/delivery/context"
	"restapi/internal/domain/entity"
	domainerrors "restapi/internal/domain/errors"
	"restapi/internal/domain/repository"
	"restapi/internal/domain/service"
	"restapi/internal/errors"
	"restapi/internal/usecase"

	"go.uber.org/fx"
)

type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate looks the identifier up once and compares the secret against the stored hash.
// The reason for a denial is only logged; callers see ErrAccessDenied either way.
func (srv *authService) Authenticate(ctx context.Context, creds entity.CredentialPair) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, creds.Identifier)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Authentication denied: no user with email", slog.String("email", creds.Identifier))

		return nil, domainerrors.ErrAccessDenied.WrapMessage("no user with email")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up principal")
	}

	if !srv.hasher.Check(creds.Secret, user.PasswordHash) {
		srv.log(ctx).Warn("Authentication denied: password mismatch", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrAccessDenied.WrapMessage("password mismatch")
	}

	srv.log(ctx).Debug("Authentication succeeded", slog.Any("userID", user.ID))

	return user, nil
}
