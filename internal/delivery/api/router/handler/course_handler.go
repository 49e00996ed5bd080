package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"restapi/internal/delivery/api/middleware"
	"restapi/internal/delivery/api/response"
	deliverycontext "restapi/internal/delivery/context"
	"restapi/internal/domain/entity"
	domainerrors "restapi/internal/domain/errors"
	"restapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ParamCourseID names the path parameter of the course routes.
const ParamCourseID = "id"

// CourseHandlerParams holds dependencies for CourseHandler, injected by Fx.
type CourseHandlerParams struct {
	fx.In

	CourseUC usecase.CourseUsecase
	Logger   *slog.Logger
}

// CourseHandler holds dependencies for course-related handlers
type CourseHandler struct {
	courseUC usecase.CourseUsecase
	logger   *slog.Logger
}

// NewCourseHandler is the constructor for CourseHandler
func NewCourseHandler(params CourseHandlerParams) *CourseHandler {
	return &CourseHandler{
		courseUC: params.CourseUC,
		logger:   params.Logger,
	}
}

// CourseRequest is the body of POST and PUT course requests.
type CourseRequest struct {
	Title           string  `json:"title" form:"title"`
	Description     string  `json:"description" form:"description"`
	EstimatedTime   *string `json:"estimatedTime" form:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded" form:"materialsNeeded"`
}

func (r *CourseRequest) toInput() *usecase.CourseInput {
	return &usecase.CourseInput{
		Title:           r.Title,
		Description:     r.Description,
		EstimatedTime:   r.EstimatedTime,
		MaterialsNeeded: r.MaterialsNeeded,
	}
}

// CourseResponse is the public projection of a course.
type CourseResponse struct {
	ID              uint          `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	EstimatedTime   *string       `json:"estimatedTime"`
	MaterialsNeeded *string       `json:"materialsNeeded"`
	UserID          uint          `json:"userId"`
	Owner           *UserResponse `json:"owner,omitempty"`
}

func toCourseResponses(courses []*entity.Course) []*CourseResponse {
	out := make([]*CourseResponse, 0, len(courses))
	for _, course := range courses {
		out = append(out, &CourseResponse{
			ID:              course.ID,
			Title:           course.Title,
			Description:     course.Description,
			EstimatedTime:   course.EstimatedTime,
			MaterialsNeeded: course.MaterialsNeeded,
			UserID:          course.UserID,
			Owner:           toUserResponse(course.Owner),
		})
	}

	return out
}

// ListCourses returns every course with its owner.
func (h *CourseHandler) ListCourses(c echo.Context) error {
	courses, err := h.courseUC.ListCourses(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toCourseResponses(courses))
}

// ListCoursesByOwner returns the courses whose owner id equals the path id.
func (h *CourseHandler) ListCoursesByOwner(c echo.Context) error {
	ownerID, err := middleware.ParseID(c.Param(ParamCourseID))
	if err != nil {
		return err
	}

	courses, err := h.courseUC.ListCoursesByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toCourseResponses(courses))
}

// CreateCourse stores a course owned by the principal.
func (h *CourseHandler) CreateCourse(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrAccessDenied.WrapMessage("principal missing")
	}

	var req CourseRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidRequestBody.WrapMessage(err.Error())
	}

	course, err := h.courseUC.CreateCourse(c.Request().Context(), principal, req.toInput())
	if err != nil {
		return err
	}

	return response.Created(c, "/api/courses/"+strconv.FormatUint(uint64(course.ID), 10))
}

// UpdateCourse replaces a course owned by the principal.
func (h *CourseHandler) UpdateCourse(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrAccessDenied.WrapMessage("principal missing")
	}

	courseID, err := middleware.ParseID(c.Param(ParamCourseID))
	if err != nil {
		return err
	}

	var req CourseRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidRequestBody.WrapMessage(err.Error())
	}

	if err := h.courseUC.UpdateCourse(c.Request().Context(), principal, courseID, req.toInput()); err != nil {
		return err
	}

	return response.NoContent(c)
}

// DeleteCourse removes a course owned by the principal.
func (h *CourseHandler) DeleteCourse(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrAccessDenied.WrapMessage("principal missing")
	}

	courseID, err := middleware.ParseID(c.Param(ParamCourseID))
	if err != nil {
		return err
	}

	if err := h.courseUC.DeleteCourse(c.Request().Context(), principal, courseID); err != nil {
		return err
	}

	return response.NoContent(c)
}
