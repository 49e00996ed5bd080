// Package handler contains the HTTP handlers of the API.
package handler

import (
	"log/slog"
	"net/http"

	"restapi/internal/delivery/api/response"
	deliverycontext "restapi/internal/delivery/context"
	"restapi/internal/domain/entity"
	domainerrors "restapi/internal/domain/errors"
	"restapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterUserRequest is the body of POST /api/users.
type RegisterUserRequest struct {
	FirstName    string `json:"firstName" form:"firstName"`
	LastName     string `json:"lastName" form:"lastName"`
	EmailAddress string `json:"emailAddress" form:"emailAddress"`
	Password     string `json:"password" form:"password"`
}

// UserResponse is the public projection of a user. The password hash is never included.
type UserResponse struct {
	ID           uint   `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

func toUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.EmailAddress,
	}
}

// ListUsers returns the authenticated principal when the gate ran, otherwise every user.
func (h *UserHandler) ListUsers(c echo.Context) error {
	if principal, ok := deliverycontext.GetPrincipal(c); ok {
		return response.Success(c, http.StatusOK, toUserResponse(principal))
	}

	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, out)
}

// RegisterUser creates an account and points the client at the root.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidRequestBody.WrapMessage(err.Error())
	}

	_, err := h.userUC.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
		Password:     req.Password,
	})
	if err != nil {
		return err
	}

	return response.Created(c, "/")
}
