package auth

import "fmt"

// Outcome is the three-way result of a role gate check.
type Outcome int

const (
	Unauthenticated Outcome = iota
	Forbidden
	Authorized
)

func (o Outcome) String() string {
	switch o {
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	case Authorized:
		return "authorized"
	default:
		return "unknown"
	}
}

// Decision carries the outcome plus what is needed to render it.
type Decision struct {
	Outcome     Outcome
	Identity    *Identity
	Requirement RoleRequirement
}

// Evaluate decides whether current satisfies req. A nil identity short-circuits
// to Unauthenticated; an empty requirement admits nobody.
func Evaluate(current *Identity, req RoleRequirement) Decision {
	d := Decision{Identity: current, Requirement: req}
	switch {
	case current == nil:
		d.Outcome = Unauthenticated
	case req.Contains(current.Role):
		d.Outcome = Authorized
	default:
		d.Outcome = Forbidden
	}
	return d
}

// HasAccess collapses Evaluate to a boolean.
func HasAccess(current *Identity, roles ...Role) bool {
	return Evaluate(current, Require(roles...)).Outcome == Authorized
}

// Fallback texts shown for denied decisions.
const (
	UnauthenticatedTitle   = "Authentication Required"
	UnauthenticatedMessage = "You need to be logged in to access this page."
	ForbiddenTitle         = "Access Denied"
	ForbiddenMessage       = "You don't have permission to access this page."
)

// Message describes a Forbidden decision. Other outcomes return the generic text for that state.
func (d Decision) Message() string {
	switch d.Outcome {
	case Unauthenticated:
		return UnauthenticatedMessage
	case Forbidden:
		if d.Identity == nil {
			return ForbiddenMessage
		}
		return fmt.Sprintf("This page is restricted to: %s. Your current role is: %s", d.Requirement, d.Identity.Role)
	default:
		return ""
	}
}
