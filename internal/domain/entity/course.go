package entity

import "time"

// Course is a resource owned by a single user.
type Course struct {
	ID              uint
	UserID          uint // Owner reference.
	Title           string
	Description     string
	EstimatedTime   *string
	MaterialsNeeded *string
	Owner           *User // Loaded only by listing queries.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
