package model

import (
	"time"

	"gorm.io/gorm"
)

// CourseModel mirrors the 'Courses' table. UserID references Users.id.
type CourseModel struct {
	ID              uint       `gorm:"column:id;primaryKey;autoIncrement"`
	UserID          uint       `gorm:"column:userId;not null;index" validate:"required" message:"Please provide a value for \"userId\""`
	Title           string     `gorm:"column:title;type:varchar(255);not null" validate:"required" message:"Please provide a value for \"title\""`
	Description     string     `gorm:"column:description;type:text;not null" validate:"required" message:"Please provide a value for \"description\""`
	EstimatedTime   *string    `gorm:"column:estimatedTime;type:varchar(255)"`
	MaterialsNeeded *string    `gorm:"column:materialsNeeded;type:varchar(255)"`
	Owner           *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" validate:"-"`
	CreatedAt       time.Time  `gorm:"column:createdAt"`
	UpdatedAt       time.Time  `gorm:"column:updatedAt"`
}

// TableName explicitly sets the table name for GORM.
func (CourseModel) TableName() string {
	return "Courses"
}

// BeforeSave rejects rows that break the table's field constraints.
func (m *CourseModel) BeforeSave(_ *gorm.DB) error {
	return checkConstraints(m)
}
