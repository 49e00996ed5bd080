package repository

import (
	"context"
	"errors"

	"restapi/internal/domain/entity"
)

// ErrCourseNotFound is returned when no course has the requested id.
var ErrCourseNotFound = errors.New("course not found")

// CourseRepository defines the operations for course persistence.
type CourseRepository interface {
	// List returns every course with its owner loaded.
	List(ctx context.Context) ([]*entity.Course, error)

	// ListByOwner returns the courses owned by the given user, owner loaded.
	ListByOwner(ctx context.Context, ownerID uint) ([]*entity.Course, error)

	// FindByID retrieves a single course without its owner.
	FindByID(ctx context.Context, id uint) (*entity.Course, error)

	// Create persists a new course and fills in the generated id and timestamps.
	Create(ctx context.Context, course *entity.Course) error

	// Update overwrites the mutable fields of an existing course.
	Update(ctx context.Context, course *entity.Course) error

	// Delete removes the course with the given id. Missing rows are not an error.
	Delete(ctx context.Context, id uint) error
}
