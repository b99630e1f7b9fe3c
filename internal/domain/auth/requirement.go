package auth

import "strings"

// RoleRequirement is the set of roles permitted to see a view.
// Order is kept only for display.
type RoleRequirement struct {
	roles []Role
}

// Require builds a requirement from roles, dropping duplicates.
func Require(roles ...Role) RoleRequirement {
	out := make([]Role, 0, len(roles))
	for _, r := range roles {
		if !containsRole(out, r) {
			out = append(out, r)
		}
	}
	return RoleRequirement{roles: out}
}

// ParseRequirement parses a comma separated list of role labels.
func ParseRequirement(s string) (RoleRequirement, error) {
	var roles []Role
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		r, err := ParseRole(part)
		if err != nil {
			return RoleRequirement{}, err
		}
		roles = append(roles, r)
	}
	return Require(roles...), nil
}

// Contains reports whether role satisfies the requirement.
func (q RoleRequirement) Contains(role Role) bool { return containsRole(q.roles, role) }

// Roles returns a copy of the roles in declaration order.
func (q RoleRequirement) Roles() []Role {
	out := make([]Role, len(q.roles))
	copy(out, q.roles)
	return out
}

// Empty reports whether no role is admitted.
func (q RoleRequirement) Empty() bool { return len(q.roles) == 0 }

// String joins the roles with ", ".
func (q RoleRequirement) String() string {
	labels := make([]string, len(q.roles))
	for i, r := range q.roles {
		labels[i] = string(r)
	}
	return strings.Join(labels, ", ")
}

func containsRole(roles []Role, r Role) bool {
	for _, have := range roles {
		if have == r {
			return true
		}
	}
	return false
}
