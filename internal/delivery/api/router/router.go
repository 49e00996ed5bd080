// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"restapi/internal/delivery/api/middleware"
	"restapi/internal/delivery/api/router/handler"
	"restapi/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CourseHandler  *handler.CourseHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	courseHandler  *handler.CourseHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		courseHandler:  params.CourseHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Welcome)
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", metrics.Handler())

	api := e.Group("/api")

	// Users
	api.GET("/users", r.authMiddleware.Optional(r.userHandler.ListUsers))
	api.POST("/users", r.userHandler.RegisterUser)

	// Courses; the id check runs before the gate.
	courseID := middleware.RequireIDParam(handler.ParamCourseID)
	api.GET("/courses", r.courseHandler.ListCourses)
	api.POST("/courses", r.courseHandler.CreateCourse, r.authMiddleware.Authenticate)
	api.GET("/courses/:id", r.courseHandler.ListCoursesByOwner, courseID)
	api.PUT("/courses/:id", r.courseHandler.UpdateCourse, courseID, r.authMiddleware.Authenticate)
	api.DELETE("/courses/:id", r.courseHandler.DeleteCourse, courseID, r.authMiddleware.Authenticate)
}
