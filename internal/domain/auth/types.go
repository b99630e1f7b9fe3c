package auth

// Package auth contains domain-level types for identities, sessions and role gating.
// It is pure and free of framework/adapter concerns.

import (
	"fmt"
	"strings"
)

// Role represents a suite authorization role.
// The string form is the persisted and displayed label.
type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleDean          Role = "Dean"
	RoleTeacher       Role = "Teacher"
	RoleStudent       Role = "Student"
	RoleParent        Role = "Parent"
)

// AllRoles lists every role in display order.
func AllRoles() []Role {
	return []Role{RoleAdministrator, RoleDean, RoleTeacher, RoleStudent, RoleParent}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleDean, RoleTeacher, RoleStudent, RoleParent:
		return true
	default:
		return false
	}
}

func (r Role) String() string { return string(r) }

// ParseRole converts a label into a Role. Matching is exact; surrounding whitespace is ignored.
func ParseRole(s string) (Role, error) {
	r := Role(strings.TrimSpace(s))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Identity is an authenticated principal of the suite.
// Email is the unique, case-sensitive lookup key.
type Identity struct {
	ID          string `json:"id"                   yaml:"id"`
	DisplayName string `json:"name"                 yaml:"name"`
	Email       string `json:"email"                yaml:"email"`
	Role        Role   `json:"role"                 yaml:"role"`
	Department  string `json:"department,omitempty" yaml:"department,omitempty"`
	StudentID   string `json:"studentId,omitempty"  yaml:"studentId,omitempty"`
	EmployeeID  string `json:"employeeId,omitempty" yaml:"employeeId,omitempty"`
}

// Validate checks that every required field is present and the role is known.
func (i Identity) Validate() error {
	var missing []string
	if strings.TrimSpace(i.ID) == "" {
		missing = append(missing, "id")
	}
	if strings.TrimSpace(i.DisplayName) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(i.Email) == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return fmt.Errorf("identity missing %s", strings.Join(missing, ", "))
	}
	if !i.Role.Valid() {
		return fmt.Errorf("identity %s has unknown role %q", i.ID, i.Role)
	}
	return nil
}

// AuthState is the observable state of one client's authentication.
type AuthState struct {
	Identity  *Identity
	IsLoading bool
	LastError string
}

// Authenticated returns true when an identity is present.
func (s AuthState) Authenticated() bool { return s.Identity != nil }
