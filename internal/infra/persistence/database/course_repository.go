package database

import (
	"context"

	"restapi/internal/domain/entity"
	domainerrors "restapi/internal/domain/errors"
	"restapi/internal/domain/repository"
	"restapi/internal/errors"
	"restapi/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	associationOwner = "Owner"
	columnUserID     = "userId"
)

// courseRepository implements the domain.CourseRepository interface using GORM.
type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository is the constructor for courseRepository.
func NewCourseRepository(db *gorm.DB) repository.CourseRepository {
	return &courseRepository{db: db}
}

// List returns every course with its owner.
func (repo *courseRepository) List(ctx context.Context) ([]*entity.Course, error) {
	var rows []*model.CourseModel
	err := repo.db.WithContext(ctx).
		Preload(associationOwner).
		Order(orderByID).
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list courses")
	}

	return toCourseDomainList(rows), nil
}

// ListByOwner returns the courses owned by ownerID with the owner loaded.
func (repo *courseRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*entity.Course, error) {
	var rows []*model.CourseModel
	err := repo.db.WithContext(ctx).
		Preload(associationOwner).
		Where(clause.Eq{Column: clause.Column{Name: columnUserID}, Value: ownerID}).
		Order(orderByID).
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list courses by owner")
	}

	return toCourseDomainList(rows), nil
}

// FindByID retrieves a single course. The owner is not loaded.
func (repo *courseRepository) FindByID(ctx context.Context, id uint) (*entity.Course, error) {
	var courseM model.CourseModel
	if err := repo.db.WithContext(ctx).First(&courseM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourseNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find course by id")
	}

	return toCourseDomain(&courseM), nil
}

// Create persists a new course and copies the generated id and timestamps back.
func (repo *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	courseM := fromCourseDomain(course)

	if err := repo.db.WithContext(ctx).Omit(associationOwner).Create(courseM).Error; err != nil {
		return mapCourseWriteError(err, "failed to create course")
	}

	course.ID = courseM.ID
	course.CreatedAt = courseM.CreatedAt
	course.UpdatedAt = courseM.UpdatedAt

	return nil
}

// Update overwrites every mutable column, so a cleared optional field is stored as NULL.
func (repo *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	courseM := fromCourseDomain(course)

	result := repo.db.WithContext(ctx).
		Model(courseM).
		Select("*").
		Omit("ID", "CreatedAt", associationOwner).
		Updates(courseM)
	if result.Error != nil {
		return mapCourseWriteError(result.Error, "failed to update course")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCourseNotFound
	}

	course.UpdatedAt = courseM.UpdatedAt

	return nil
}

// Delete removes the course with the given id. A missing row is not an error.
func (repo *courseRepository) Delete(ctx context.Context, id uint) error {
	if err := repo.db.WithContext(ctx).Delete(&model.CourseModel{}, id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete course")
	}

	return nil
}

func mapCourseWriteError(err error, details string) error {
	if translated := translateConstraintError(err); translated != nil {
		return translated
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

func toCourseDomainList(rows []*model.CourseModel) []*entity.Course {
	courses := make([]*entity.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, toCourseDomain(row))
	}

	return courses
}

// toCourseDomain converts a GORM CourseModel to a domain Course entity.
func toCourseDomain(data *model.CourseModel) *entity.Course {
	if data == nil {
		return nil
	}

	return &entity.Course{
		ID:              data.ID,
		UserID:          data.UserID,
		Title:           data.Title,
		Description:     data.Description,
		EstimatedTime:   data.EstimatedTime,
		MaterialsNeeded: data.MaterialsNeeded,
		Owner:           toUserDomain(data.Owner),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromCourseDomain converts a domain Course entity to a GORM CourseModel. The owner is never written.
func fromCourseDomain(data *entity.Course) *model.CourseModel {
	if data == nil {
		return nil
	}

	return &model.CourseModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Title:           data.Title,
		Description:     data.Description,
		EstimatedTime:   data.EstimatedTime,
		MaterialsNeeded: data.MaterialsNeeded,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
