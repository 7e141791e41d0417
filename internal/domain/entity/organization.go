package entity

import "time"

// MemberRole is the role a user holds inside an organization.
type MemberRole string

const (
	MemberRoleOwner  MemberRole = "OWNER"
	MemberRoleAdmin  MemberRole = "ADMIN"
	MemberRoleMember MemberRole = "MEMBER"
)

// IsValid checks if the MemberRole is a valid value.
func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleOwner, MemberRoleAdmin, MemberRoleMember:
		return true
	default:
		return false
	}
}

// Organization groups users that publish events together.
type Organization struct {
	ID          string               `json:"id"`
	Slug        string               `json:"slug,omitempty"` // Secondary lookup key.
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	OwnerID     string               `json:"owner_id"`
	Members     []OrganizationMember `json:"members"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// OrganizationMember links a user to an organization.
type OrganizationMember struct {
	UserID string     `json:"user_id"`
	Role   MemberRole `json:"role"`
}

// RoleOf returns the member role of userID and whether the user is a member.
func (o *Organization) RoleOf(userID string) (MemberRole, bool) {
	for _, m := range o.Members {
		if m.UserID == userID {
			return m.Role, true
		}
	}

	return "", false
}

// IsMember reports whether userID belongs to the organization.
func (o *Organization) IsMember(userID string) bool {
	_, ok := o.RoleOf(userID)

	return ok
}

// CanManage reports whether userID is an OWNER or ADMIN of the organization.
func (o *Organization) CanManage(userID string) bool {
	role, ok := o.RoleOf(userID)

	return ok && (role == MemberRoleOwner || role == MemberRoleAdmin)
}

// OrganizationPatch carries editable organization fields. Nil means unchanged.
type OrganizationPatch struct {
	Name        *string
	Description *string
	Members     *[]OrganizationMember
}

func (p OrganizationPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Members == nil
}
