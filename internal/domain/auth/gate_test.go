package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	student := &Identity{ID: "4", DisplayName: "Alex Thompson", Email: "student@university.edu", Role: RoleStudent}
	dean := &Identity{ID: "2", DisplayName: "Prof. Michael Chen", Email: "dean@university.edu", Role: RoleDean}

	tests := []struct {
		name     string
		identity *Identity
		req      RoleRequirement
		want     Outcome
	}{
		{"student denied admin view", student, Require(RoleAdministrator, RoleDean), Forbidden},
		{"student allowed student view", student, Require(RoleStudent), Authorized},
		{"no identity", nil, Require(RoleStudent), Unauthenticated},
		{"no identity empty requirement", nil, Require(), Unauthenticated},
		{"empty requirement admits nobody", dean, Require(), Forbidden},
		{"dean allowed admin or dean", dean, Require(RoleAdministrator, RoleDean), Authorized},
		{"dean denied student view", dean, Require(RoleStudent), Forbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate(tt.identity, tt.req)
			assert.Equal(t, tt.want, d.Outcome)
			assert.Equal(t, tt.want == Authorized, HasAccess(tt.identity, tt.req.Roles()...))
		})
	}
}

func TestDecision_Message(t *testing.T) {
	student := &Identity{ID: "4", Role: RoleStudent}

	d := Evaluate(student, Require(RoleAdministrator, RoleDean))
	assert.Equal(t, "This page is restricted to: Administrator, Dean. Your current role is: Student", d.Message())

	assert.Equal(t, UnauthenticatedMessage, Evaluate(nil, Require(RoleStudent)).Message())
	assert.Empty(t, Evaluate(student, Require(RoleStudent)).Message())
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "unauthenticated", Unauthenticated.String())
	assert.Equal(t, "forbidden", Forbidden.String())
	assert.Equal(t, "authorized", Authorized.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
