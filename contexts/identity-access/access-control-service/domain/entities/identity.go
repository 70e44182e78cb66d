package entities

import (
	"strings"

	"crewdesk/contexts/identity-access/access-control-service/domain/valueobjects"
)

// Role is the closed set of roles an authenticated actor may hold.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleHRManager Role = "hr_manager"
	RoleManager   Role = "manager"
	RoleEmployee  Role = "employee"
)

// ParseRole validates a raw role string against the closed enumeration.
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.TrimSpace(raw)) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleHRManager:
		return RoleHRManager, true
	case RoleManager:
		return RoleManager, true
	case RoleEmployee:
		return RoleEmployee, true
	default:
		return "", false
	}
}

func (r Role) String() string {
	return string(r)
}

// Identity is the authenticated actor consumed from the session provider.
// The guard reads it, never mutates it.
type Identity struct {
	UserID      string                    `json:"user_id"`
	DisplayName string                    `json:"display_name"`
	Role        Role                      `json:"role"`
	Permissions []valueobjects.Permission `json:"permissions"`
}

// Session is the session provider's output: a resolved identity, a signed-out
// state (nil identity), or a still-loading state.
type Session struct {
	Identity *Identity
	Loading  bool
}
