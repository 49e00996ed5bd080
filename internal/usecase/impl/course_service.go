package impl

import (
	"context"
	"log/slog"

	deliverycontext "restapi/internal/delivery/context"
	"restapi/internal/domain/entity"
	domainerrors "restapi/internal/domain/errors"
	"restapi/internal/domain/repository"
	"restapi/internal/domain/validation"
	"restapi/internal/errors"
	"restapi/internal/usecase"

	"go.uber.org/fx"
)

type courseService struct {
	txManager  repository.TransactionManager
	courseRepo repository.CourseRepository
	validator  *validation.Validator
	logger     *slog.Logger
}

// CourseServiceParams holds dependencies for CourseService, injected by Fx.
type CourseServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	CourseRepo repository.CourseRepository
	Validator  *validation.Validator
	Logger     *slog.Logger
}

// NewCourseService is the constructor for courseService.
func NewCourseService(params CourseServiceParams) usecase.CourseUsecase {
	return &courseService{
		txManager:  params.TxManager,
		courseRepo: params.CourseRepo,
		validator:  params.Validator,
		logger:     params.Logger,
	}
}

func (srv *courseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCourses returns every course with its owner.
func (srv *courseService) ListCourses(ctx context.Context) ([]*entity.Course, error) {
	courses, err := srv.courseRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	return courses, nil
}

// ListCoursesByOwner returns the courses of one user. Unknown users have none.
func (srv *courseService) ListCoursesByOwner(ctx context.Context, ownerID uint) ([]*entity.Course, error) {
	courses, err := srv.courseRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courses by owner")
	}

	return courses, nil
}

// CreateCourse stores a course owned by the principal.
func (srv *courseService) CreateCourse(ctx context.Context, principal *entity.User, input *usecase.CourseInput) (*entity.Course, error) {
	if principal == nil {
		return nil, domainerrors.ErrAccessDenied.WrapMessage("principal missing")
	}
	if err := srv.validator.Check(validation.CourseRules, input); err != nil {
		return nil, err
	}

	course := &entity.Course{
		UserID:          principal.ID,
		Title:           input.Title,
		Description:     input.Description,
		EstimatedTime:   input.EstimatedTime,
		MaterialsNeeded: input.MaterialsNeeded,
	}
	if err := srv.courseRepo.Create(ctx, course); err != nil {
		return nil, errors.Wrap(err, "failed to create course")
	}

	srv.log(ctx).Info("Course created", slog.Any("courseID", course.ID), slog.Any("userID", principal.ID))

	return course, nil
}

// UpdateCourse replaces the course's fields. A missing course is a no-op.
func (srv *courseService) UpdateCourse(ctx context.Context, principal *entity.User, courseID uint, input *usecase.CourseInput) error {
	if principal == nil {
		return domainerrors.ErrAccessDenied.WrapMessage("principal missing")
	}
	if err := srv.validator.Check(validation.CourseRules, input); err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courseRepo := repoFactory.CourseRepo()

		course, err := srv.loadOwned(ctx, courseRepo, principal, courseID)
		if err != nil || course == nil {
			return err
		}

		course.Title = input.Title
		course.Description = input.Description
		if input.EstimatedTime != nil {
			course.EstimatedTime = input.EstimatedTime
		}
		if input.MaterialsNeeded != nil {
			course.MaterialsNeeded = input.MaterialsNeeded
		}

		err = courseRepo.Update(ctx, course)
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to update course")
		}

		return nil
	})
}

// DeleteCourse removes a course owned by the principal. A missing course is a no-op.
func (srv *courseService) DeleteCourse(ctx context.Context, principal *entity.User, courseID uint) error {
	if principal == nil {
		return domainerrors.ErrAccessDenied.WrapMessage("principal missing")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courseRepo := repoFactory.CourseRepo()

		course, err := srv.loadOwned(ctx, courseRepo, principal, courseID)
		if err != nil || course == nil {
			return err
		}

		if err := courseRepo.Delete(ctx, course.ID); err != nil {
			return errors.Wrap(err, "failed to delete course")
		}

		srv.log(ctx).Info("Course deleted", slog.Any("courseID", course.ID), slog.Any("userID", principal.ID))

		return nil
	})
}

// loadOwned returns the course when the principal owns it, nil when it does
// not exist and ErrForbidden otherwise.
func (srv *courseService) loadOwned(
	ctx context.Context,
	courseRepo repository.CourseRepository,
	principal *entity.User,
	courseID uint,
) (*entity.Course, error) {
	course, err := courseRepo.FindByID(ctx, courseID)
	if errors.Is(err, repository.ErrCourseNotFound) {
		srv.log(ctx).Debug("Course not found, nothing to change", slog.Any("courseID", courseID))

		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load course")
	}

	if !principal.IsOwnerOf(course) {
		srv.log(ctx).Warn("Course ownership check failed",
			slog.Any("courseID", courseID),
			slog.Any("ownerID", course.UserID),
			slog.Any("userID", principal.ID))

		return nil, domainerrors.ErrForbidden.WrapMessage("course belongs to another user")
	}

	return course, nil
}
