package directory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainauth "github.com/target/academic-suite/internal/domain/auth"
)

func TestDefault_Resolve(t *testing.T) {
	d := Default()

	tests := []struct {
		email string
		found bool
		role  domainauth.Role
	}{
		{"admin@university.edu", true, domainauth.RoleAdministrator},
		{"dean@university.edu", true, domainauth.RoleDean},
		{"teacher@university.edu", true, domainauth.RoleTeacher},
		{"student@university.edu", true, domainauth.RoleStudent},
		{"parent@university.edu", true, domainauth.RoleParent},
		{"Dean@university.edu", false, ""},
		{" dean@university.edu", false, ""},
		{"nobody@university.edu", false, ""},
		{"", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			id, ok := d.Resolve(tt.email)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.role, id.Role)
		})
	}
}

func TestDefault_StudentFields(t *testing.T) {
	id, ok := Default().Resolve("student@university.edu")
	require.True(t, ok)
	assert.Equal(t, "STU001", id.StudentID)
	assert.Empty(t, id.EmployeeID)
	assert.Equal(t, "Alex Thompson", id.DisplayName)
}

func TestNew_Rejects(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)

	dup := domainauth.Identity{ID: "1", DisplayName: "A", Email: "a@b.edu", Role: domainauth.RoleDean}
	_, err = New([]domainauth.Identity{dup, dup})
	require.ErrorContains(t, err, "duplicate email")

	_, err = New([]domainauth.Identity{{ID: "1", DisplayName: "A", Email: "a@b.edu", Role: "Janitor"}})
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directory.yaml")
	content := `identities:
  - id: "10"
    name: Dr. Ada Lovelace
    email: ada@university.edu
    role: Teacher
    department: Mathematics
    employeeId: EMP010
  - id: "11"
    name: Grace Hopper
    email: grace@university.edu
    role: Student
    studentId: STU010
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	d, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, d.Identities(), 2)

	ada, ok := d.Resolve("ada@university.edu")
	require.True(t, ok)
	assert.Equal(t, domainauth.RoleTeacher, ada.Role)
	assert.Equal(t, "EMP010", ada.EmployeeID)

	_, ok = d.Resolve("admin@university.edu")
	assert.False(t, ok, "file replaces the built-in table")
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("identities: [ {"), 0o600))
	_, err = LoadFile(path)
	require.Error(t, err)
}
