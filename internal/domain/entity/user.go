// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that can own courses and authenticate requests.
type User struct {
	ID           uint
	FirstName    string
	LastName     string
	EmailAddress string // Login identifier; unique across users.
	PasswordHash string // bcrypt digest. Never leaves the server.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOwnerOf reports whether the user owns the given course.
func (u *User) IsOwnerOf(course *Course) bool {
	return u != nil && course != nil && course.UserID == u.ID
}
