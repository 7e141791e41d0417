package entity

import "slices"

// Role is a platform wide role carried in access tokens. Roles inside an
// organization are MemberRole.
type Role string

const (
	RoleAttendee  Role = "attendee"
	RoleOrganizer Role = "organizer"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleAttendee || r == RoleOrganizer
}

type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RolesFromStrings parses token claims. Unknown roles are ignored so a
// newer identity provider cannot grant access by accident.
func RolesFromStrings(ss []string) Roles {
	var roles Roles
	for _, s := range ss {
		if role := Role(s); role.IsValid() && !roles.Contains(role) {
			roles = append(roles, role)
		}
	}

	return roles
}
