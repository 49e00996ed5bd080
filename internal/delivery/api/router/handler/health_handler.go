package handler

import (
	"net/http"

	"restapi/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

const welcomeMessage = "Welcome to the REST API project!"

// Welcome greets clients on the root route.
func Welcome(c echo.Context) error {
	return response.Success(c, http.StatusOK, response.MessageResponse{Message: welcomeMessage})
}

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
