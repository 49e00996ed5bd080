package handler

import (
	"net/http"
	"testing"

	"restapi/internal/domain/entity"
	domainerrors "restapi/internal/domain/errors"
	mockUC "restapi/internal/mocks/usecase"
	"restapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var jane = &entity.User{ID: 1, FirstName: "Jane", LastName: "Doe", EmailAddress: "jane@example.com"}

func newTestCourseHandler(t *testing.T) (*CourseHandler, *mockUC.MockCourseUsecase) {
	courseUC := mockUC.NewMockCourseUsecase(t)

	return NewCourseHandler(CourseHandlerParams{CourseUC: courseUC, Logger: newDiscardLogger()}), courseUC
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames(ParamCourseID)
	c.SetParamValues(id)

	return c
}

func TestCourseHandler_ListCourses(t *testing.T) {
	h, courseUC := newTestCourseHandler(t)
	courseUC.EXPECT().ListCourses(mock.Anything).Return([]*entity.Course{
		{ID: 3, UserID: 1, Title: "Go", Description: "Learn Go", EstimatedTime: ptr("3 hours"), Owner: jane},
	}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/courses", "", nil)
	require.NoError(t, h.ListCourses(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"id":3,"title":"Go","description":"Learn Go","estimatedTime":"3 hours","materialsNeeded":null,"userId":1,
		"owner":{"id":1,"firstName":"Jane","lastName":"Doe","emailAddress":"jane@example.com"}
	}]`, rec.Body.String())
}

func TestCourseHandler_ListCoursesByOwner(t *testing.T) {
	h, courseUC := newTestCourseHandler(t)
	courseUC.EXPECT().ListCoursesByOwner(mock.Anything, uint(9)).Return([]*entity.Course{}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/courses/9", "", nil)
	require.NoError(t, h.ListCoursesByOwner(withID(c, "9")))

	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCourseHandler_CreateCourse(t *testing.T) {
	h, courseUC := newTestCourseHandler(t)
	courseUC.EXPECT().
		CreateCourse(mock.Anything, jane, &usecase.CourseInput{Title: "Go", Description: "Learn Go", MaterialsNeeded: ptr("laptop")}).
		Return(&entity.Course{ID: 12}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/courses",
		`{"title":"Go","description":"Learn Go","materialsNeeded":"laptop"}`, jane)
	require.NoError(t, h.CreateCourse(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/courses/12", rec.Header().Get(echo.HeaderLocation))
	assert.Empty(t, rec.Body.String())
}

func TestCourseHandler_CreateCourse_NoPrincipal(t *testing.T) {
	h, _ := newTestCourseHandler(t)

	c, _ := newJSONContext(http.MethodPost, "/api/courses", `{}`, nil)

	assert.ErrorIs(t, h.CreateCourse(c), domainerrors.ErrAccessDenied)
}

func TestCourseHandler_UpdateCourse(t *testing.T) {
	h, courseUC := newTestCourseHandler(t)
	courseUC.EXPECT().
		UpdateCourse(mock.Anything, jane, uint(4), &usecase.CourseInput{Title: "Go 2", Description: "More"}).
		Return(nil)

	c, rec := newJSONContext(http.MethodPut, "/api/courses/4", `{"title":"Go 2","description":"More"}`, jane)
	require.NoError(t, h.UpdateCourse(withID(c, "4")))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCourseHandler_UpdateCourse_Forbidden(t *testing.T) {
	h, courseUC := newTestCourseHandler(t)
	courseUC.EXPECT().UpdateCourse(mock.Anything, jane, uint(4), mock.Anything).Return(domainerrors.ErrForbidden)

	c, _ := newJSONContext(http.MethodPut, "/api/courses/4", `{"title":"Go 2","description":"More"}`, jane)

	assert.ErrorIs(t, h.UpdateCourse(withID(c, "4")), domainerrors.ErrForbidden)
}

func TestCourseHandler_DeleteCourse(t *testing.T) {
	h, courseUC := newTestCourseHandler(t)
	courseUC.EXPECT().DeleteCourse(mock.Anything, jane, uint(4)).Return(nil)

	c, rec := newJSONContext(http.MethodDelete, "/api/courses/4", "", jane)
	require.NoError(t, h.DeleteCourse(withID(c, "4")))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCourseHandler_BadID(t *testing.T) {
	h, _ := newTestCourseHandler(t)

	c, _ := newJSONContext(http.MethodDelete, "/api/courses/abc", "", jane)

	assert.ErrorIs(t, h.DeleteCourse(withID(c, "abc")), domainerrors.ErrRouteNotFound)
}

func TestHealthAndWelcome(t *testing.T) {
	c, rec := newJSONContext(http.MethodGet, "/", "", nil)
	require.NoError(t, Welcome(c))
	assert.JSONEq(t, `{"message":"Welcome to the REST API project!"}`, rec.Body.String())

	c, rec = newJSONContext(http.MethodGet, "/health", "", nil)
	require.NoError(t, HealthCheck(c))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
