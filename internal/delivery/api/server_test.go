package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"restapi/config"
	apimiddleware "restapi/internal/delivery/api/middleware"
	"restapi/internal/delivery/api/router"
	"restapi/internal/delivery/api/router/handler"
	deliverycontext "restapi/internal/delivery/context"
	"restapi/internal/domain/validation"
	"restapi/internal/infra/auth"
	"restapi/internal/infra/persistence/database"
	"restapi/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

const (
	janeEmail    = "jane@example.com"
	janePassword = "password123"
	joeEmail     = "joe@example.com"
	joePassword  = "hunter2000"
)

type APISuite struct {
	suite.Suite

	e *echo.Echo
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := database.OpenSQLite(filepath.Join(s.T().TempDir(), "api.db"), logger, false)
	s.Require().NoError(err)
	s.Require().NoError(database.Migrate(context.Background(), db))
	s.T().Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	userRepo := database.NewUserRepository(db)
	courseRepo := database.NewCourseRepository(db)
	txManager := database.NewTransactionManager(db)
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	validator := validation.New()

	userUC := impl.NewUserService(impl.UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Validator: validator,
		Logger:    logger,
	})
	authUC := impl.NewAuthService(impl.AuthServiceParams{UserRepo: userRepo, Hasher: hasher, Logger: logger})
	courseUC := impl.NewCourseService(impl.CourseServiceParams{
		TxManager:  txManager,
		CourseRepo: courseRepo,
		Validator:  validator,
		Logger:     logger,
	})

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	s.e = NewEcho(cfg, logger, apimiddleware.NewErrorMiddleware(logger, cfg), router.RouterParams{
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, Logger: logger}),
		CourseHandler:  handler.NewCourseHandler(handler.CourseHandlerParams{CourseUC: courseUC, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{AuthUC: authUC, Logger: logger}),
	})
}

func basic(email, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}

func (s *APISuite) do(method, target, body, authorization string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	return rec
}

func (s *APISuite) register(first, email, password string) {
	rec := s.do(http.MethodPost, "/api/users",
		`{"firstName":"`+first+`","lastName":"Doe","emailAddress":"`+email+`","password":"`+password+`"}`, "")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	s.Equal("/", rec.Header().Get(echo.HeaderLocation))
}

func (s *APISuite) createCourse(authorization, title string) string {
	rec := s.do(http.MethodPost, "/api/courses",
		`{"title":"`+title+`","description":"A course","estimatedTime":"2 hours"}`, authorization)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	return rec.Header().Get(echo.HeaderLocation)
}

func (s *APISuite) decodeList(rec *httptest.ResponseRecorder) []map[string]any {
	var out []map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func (s *APISuite) TestWelcomeAndHealth() {
	rec := s.do(http.MethodGet, "/", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"message":"Welcome to the REST API project!"}`, rec.Body.String())
	s.NotEmpty(rec.Header().Get(deliverycontext.HeaderXRequestID))

	rec = s.do(http.MethodGet, "/health", "", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *APISuite) TestRequestIDIsEchoed() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	s.Equal("req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func (s *APISuite) TestUserAndCourseLifecycle() {
	jane := basic(janeEmail, janePassword)
	s.register("Jane", janeEmail, janePassword)

	rec := s.do(http.MethodGet, "/api/users", "", jane)
	s.Require().Equal(http.StatusOK, rec.Code)
	var me map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &me))
	s.Equal(janeEmail, me["emailAddress"])
	s.NotContains(rec.Body.String(), "password")

	location := s.createCourse(jane, "Learn Go")
	s.True(strings.HasPrefix(location, "/api/courses/"))

	rec = s.do(http.MethodGet, "/api/courses", "", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	courses := s.decodeList(rec)
	s.Require().Len(courses, 1)
	s.Equal("Learn Go", courses[0]["title"])
	s.Equal("2 hours", courses[0]["estimatedTime"])
	s.Nil(courses[0]["materialsNeeded"])
	owner, ok := courses[0]["owner"].(map[string]any)
	s.Require().True(ok)
	s.Equal(janeEmail, owner["emailAddress"])

	rec = s.do(http.MethodPut, location, `{"title":"Learn Go Fast","description":"Quicker"}`, jane)
	s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/courses", "", "")
	courses = s.decodeList(rec)
	s.Require().Len(courses, 1)
	s.Equal("Learn Go Fast", courses[0]["title"])
	s.Equal("2 hours", courses[0]["estimatedTime"])

	rec = s.do(http.MethodDelete, location, "", jane)
	s.Equal(http.StatusNoContent, rec.Code)
	rec = s.do(http.MethodDelete, location, "", jane)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/courses", "", "")
	s.Empty(s.decodeList(rec))
}

func (s *APISuite) TestListUsersWithoutCredentials() {
	s.register("Jane", janeEmail, janePassword)
	s.register("Joe", joeEmail, joePassword)

	rec := s.do(http.MethodGet, "/api/users", "", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Len(s.decodeList(rec), 2)
}

func (s *APISuite) TestListUsersBadCredentials() {
	s.register("Jane", janeEmail, janePassword)

	rec := s.do(http.MethodGet, "/api/users", "", basic(janeEmail, "wrong-password"))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.JSONEq(`{"message":"Access Denied","kind":"AUTH_FAILURE"}`, rec.Body.String())
}

func (s *APISuite) TestCreateCourseRequiresAuth() {
	rec := s.do(http.MethodPost, "/api/courses", `{"title":"Go","description":"Learn"}`, "")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), `"message":"Access Denied"`)

	rec = s.do(http.MethodPost, "/api/courses", `{"title":"Go","description":"Learn"}`, "Bearer abc")
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/api/courses", `{"title":"Go","description":"Learn"}`, basic("nobody@example.com", "password123"))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *APISuite) TestDuplicateEmail() {
	s.register("Jane", janeEmail, janePassword)

	rec := s.do(http.MethodPost, "/api/users",
		`{"firstName":"Janet","lastName":"Doe","emailAddress":"JANE@example.com","password":"password456"}`, "")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{
		"message":"Conflict",
		"kind":"CONFLICT",
		"errors":["The email address you entered is already in use"]
	}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/users", "", "")
	s.Len(s.decodeList(rec), 1)
}

func (s *APISuite) TestRegisterValidation() {
	rec := s.do(http.MethodPost, "/api/users", `{"emailAddress":"not-an-email","password":"short"}`, "")
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	var body struct {
		Message string   `json:"message"`
		Kind    string   `json:"kind"`
		Errors  []string `json:"errors"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("Validation Failed", body.Message)
	s.Equal([]string{
		`Please provide a value for "first name"`,
		`Please provide a value for "last name"`,
		`Please provide a valid email address for "email"`,
		`Please provide a value for "password" that is between 8 and 20 characters in length`,
	}, body.Errors)
}

func (s *APISuite) TestRegisterMultibytePasswordTooLong() {
	body, err := json.Marshal(map[string]string{
		"firstName":    "Jane",
		"lastName":     "Doe",
		"emailAddress": janeEmail,
		"password":     strings.Repeat("😀", 20),
	})
	s.Require().NoError(err)

	rec := s.do(http.MethodPost, "/api/users", string(body), "")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{
		"message":"Validation Failed",
		"kind":"VALIDATION_FAILED",
		"errors":["Please provide a value for \"password\" that is between 8 and 20 characters in length"]
	}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/users", "", "")
	s.Empty(s.decodeList(rec))
}

func (s *APISuite) TestCourseValidation() {
	jane := basic(janeEmail, janePassword)
	s.register("Jane", janeEmail, janePassword)

	rec := s.do(http.MethodPost, "/api/courses", `{"description":"no title"}`, jane)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), `Please provide a value for \"title\"`)
}

func (s *APISuite) TestMalformedBody() {
	rec := s.do(http.MethodPost, "/api/users", `{"firstName":`, "")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), `"kind":"INVALID_INPUT"`)
}

func (s *APISuite) TestUpdateAndDeleteByNonOwner() {
	jane := basic(janeEmail, janePassword)
	joe := basic(joeEmail, joePassword)
	s.register("Jane", janeEmail, janePassword)
	s.register("Joe", joeEmail, joePassword)
	location := s.createCourse(jane, "Jane's course")

	rec := s.do(http.MethodPut, location, `{"title":"Hijacked","description":"x"}`, joe)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodDelete, location, "", joe)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodGet, "/api/courses", "", "")
	courses := s.decodeList(rec)
	s.Require().Len(courses, 1)
	s.Equal("Jane's course", courses[0]["title"])
}

func (s *APISuite) TestMissingCourseIsNoOp() {
	jane := basic(janeEmail, janePassword)
	s.register("Jane", janeEmail, janePassword)

	rec := s.do(http.MethodPut, "/api/courses/999", `{"title":"Ghost","description":"x"}`, jane)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodDelete, "/api/courses/999", "", jane)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *APISuite) TestListCoursesByOwner() {
	jane := basic(janeEmail, janePassword)
	s.register("Jane", janeEmail, janePassword)
	s.createCourse(jane, "One")
	s.createCourse(jane, "Two")

	rec := s.do(http.MethodGet, "/api/courses/1", "", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Len(s.decodeList(rec), 2)

	rec = s.do(http.MethodGet, "/api/courses/42", "", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Empty(s.decodeList(rec))
}

func (s *APISuite) TestRouteNotFound() {
	const notFound = `{"message":"Route Not Found","kind":"NOT_FOUND"}`

	for _, tc := range []struct {
		name   string
		method string
		target string
	}{
		{name: "unknown path", method: http.MethodGet, target: "/api/nope"},
		{name: "non-numeric id", method: http.MethodGet, target: "/api/courses/abc"},
		{name: "zero id", method: http.MethodDelete, target: "/api/courses/0"},
		{name: "unsupported method", method: http.MethodPatch, target: "/api/users"},
	} {
		s.Run(tc.name, func() {
			rec := s.do(tc.method, tc.target, "", "")
			s.Equal(http.StatusNotFound, rec.Code)
			s.JSONEq(notFound, rec.Body.String())
		})
	}
}

func TestNewEcho_BodyLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := NewEcho(cfg, logger, apimiddleware.NewErrorMiddleware(logger, cfg), router.RouterParams{
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{Logger: logger}),
		CourseHandler:  handler.NewCourseHandler(handler.CourseHandlerParams{Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{Logger: logger}),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(strings.Repeat("x", 4096)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.Contains(t, rec.Body.String(), `"kind":"HTTP_ERROR"`)
}
