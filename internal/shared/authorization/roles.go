package authorization

import "strings"

type UserRole string

const (
	RoleAgent      UserRole = "agent"
	RoleSupervisor UserRole = "supervisor"
	RoleAdmin      UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAgent, RoleSupervisor, RoleAdmin:
		return true
	}
	return false
}

// CanManageRouting reports whether the role may edit rules or reassign tickets.
func (r UserRole) CanManageRouting() bool {
	return r == RoleSupervisor || r == RoleAdmin
}

// ParseUserRole parses a role case-insensitively, degrading unknown values to agent.
func ParseUserRole(s string) UserRole {
	role := UserRole(strings.ToLower(strings.TrimSpace(s)))
	if role.IsValid() {
		return role
	}
	return RoleAgent
}
