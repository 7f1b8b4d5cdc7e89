package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("superuser").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRoleFromString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, RoleAdmin, RoleFromString("admin"))
	assert.Equal(t, RoleUser, RoleFromString("user"))
	// Unrecognized values degrade to the least-privileged role.
	assert.Equal(t, RoleUser, RoleFromString("superuser"))
	assert.Equal(t, RoleUser, RoleFromString(""))
}
