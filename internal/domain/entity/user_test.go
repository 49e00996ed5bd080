package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_IsOwnerOf(t *testing.T) {
	owner := &User{ID: 7}
	other := &User{ID: 8}
	course := &Course{ID: 1, UserID: 7}

	assert.True(t, owner.IsOwnerOf(course))
	assert.False(t, other.IsOwnerOf(course))
	assert.False(t, owner.IsOwnerOf(nil))

	var nobody *User
	assert.False(t, nobody.IsOwnerOf(course))
}
