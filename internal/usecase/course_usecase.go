package usecase

import (
	"context"

	"restapi/internal/domain/entity"
)

// CourseInput carries the client-supplied course fields.
// A nil optional field on update keeps the stored value.
type CourseInput struct {
	Title           string
	Description     string
	EstimatedTime   *string
	MaterialsNeeded *string
}

// FieldValues exposes the raw input to the rule tables.
func (in *CourseInput) FieldValues() map[string]string {
	return map[string]string{
		"title":       in.Title,
		"description": in.Description,
	}
}

// CourseUsecase defines the course operations. Mutations take the
// authenticated principal and enforce ownership.
type CourseUsecase interface {
	ListCourses(ctx context.Context) ([]*entity.Course, error)
	ListCoursesByOwner(ctx context.Context, ownerID uint) ([]*entity.Course, error)
	CreateCourse(ctx context.Context, principal *entity.User, input *CourseInput) (*entity.Course, error)
	UpdateCourse(ctx context.Context, principal *entity.User, courseID uint, input *CourseInput) error
	DeleteCourse(ctx context.Context, principal *entity.User, courseID uint) error
}
