package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"organizer", "admin", "attendee", "organizer"})

	assert.Equal(t, Roles{RoleOrganizer, RoleAttendee}, roles)
	assert.True(t, roles.Contains(RoleAttendee))
	assert.Empty(t, RolesFromStrings(nil))
}
