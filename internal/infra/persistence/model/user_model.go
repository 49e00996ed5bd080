// Package model holds the GORM persistence models. Table and column names
// keep the Sequelize layout (Users/Courses, camelCase columns) so existing databases keep working.
package model

import (
	"time"

	"gorm.io/gorm"
)

// UserModel mirrors the 'Users' table. Email uniqueness ignores case.
type UserModel struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement"`
	FirstName    string    `gorm:"column:firstName;type:varchar(255);not null" validate:"required" message:"Please provide a value for \"first name\""`
	LastName     string    `gorm:"column:lastName;type:varchar(255);not null" validate:"required" message:"Please provide a value for \"last name\""`
	EmailAddress string    `gorm:"column:emailAddress;type:varchar(255);not null;uniqueIndex:idx_users_email_lower,expression:LOWER(\"emailAddress\")" validate:"required" message:"Please provide a value for \"email\""`
	Password     string    `gorm:"column:password;type:varchar(255);not null" validate:"required" message:"Please provide a value for \"password\""`
	CreatedAt    time.Time `gorm:"column:createdAt"`
	UpdatedAt    time.Time `gorm:"column:updatedAt"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "Users"
}

// BeforeSave rejects rows that break the table's field constraints.
func (m *UserModel) BeforeSave(_ *gorm.DB) error {
	return checkConstraints(m)
}
