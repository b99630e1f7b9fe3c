package directory

// Package directory provides the static identity directory used by login.

import (
	"errors"
	"fmt"
	"os"

	domainauth "github.com/target/academic-suite/internal/domain/auth"
	"gopkg.in/yaml.v3"
)

// Directory is a read-only table of identities keyed by exact email.
type Directory struct {
	byEmail map[string]domainauth.Identity
	order   []string
}

// New builds a directory. Every identity must validate and emails must be unique.
func New(ids []domainauth.Identity) (*Directory, error) {
	if len(ids) == 0 {
		return nil, errors.New("directory: at least one identity is required")
	}
	d := &Directory{
		byEmail: make(map[string]domainauth.Identity, len(ids)),
		order:   make([]string, 0, len(ids)),
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, fmt.Errorf("directory: %w", err)
		}
		if _, dup := d.byEmail[id.Email]; dup {
			return nil, fmt.Errorf("directory: duplicate email %q", id.Email)
		}
		d.byEmail[id.Email] = id
		d.order = append(d.order, id.Email)
	}
	return d, nil
}

// Default returns the directory of built-in demo accounts.
func Default() *Directory {
	d, err := New(DefaultIdentities())
	if err != nil {
		panic(err) // built-in table is static
	}
	return d
}

// Resolve implements ports.IdentityDirectory. Matching is case-sensitive.
func (d *Directory) Resolve(email string) (domainauth.Identity, bool) {
	id, ok := d.byEmail[email]
	return id, ok
}

// Identities returns every entry in load order.
func (d *Directory) Identities() []domainauth.Identity {
	out := make([]domainauth.Identity, 0, len(d.order))
	for _, email := range d.order {
		out = append(out, d.byEmail[email])
	}
	return out
}

// fileFormat is the on-disk layout of a directory file.
type fileFormat struct {
	Identities []domainauth.Identity `yaml:"identities"`
}

// LoadFile reads a YAML directory file.
func LoadFile(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read directory file: %w", err)
	}
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse directory file: %w", err)
	}
	return New(f.Identities)
}

// DefaultIdentities lists the built-in demo accounts, one per role.
func DefaultIdentities() []domainauth.Identity {
	return []domainauth.Identity{
		{
			ID:          "1",
			DisplayName: "Dr. Sarah Johnson",
			Email:       "admin@university.edu",
			Role:        domainauth.RoleAdministrator,
			Department:  "Administration",
			EmployeeID:  "EMP001",
		},
		{
			ID:          "2",
			DisplayName: "Prof. Michael Chen",
			Email:       "dean@university.edu",
			Role:        domainauth.RoleDean,
			Department:  "Computer Science",
			EmployeeID:  "EMP002",
		},
		{
			ID:          "3",
			DisplayName: "Dr. Emily Rodriguez",
			Email:       "teacher@university.edu",
			Role:        domainauth.RoleTeacher,
			Department:  "Mathematics",
			EmployeeID:  "EMP003",
		},
		{
			ID:          "4",
			DisplayName: "Alex Thompson",
			Email:       "student@university.edu",
			Role:        domainauth.RoleStudent,
			Department:  "Computer Science",
			StudentID:   "STU001",
		},
		{
			ID:          "5",
			DisplayName: "Maria Thompson",
			Email:       "parent@university.edu",
			Role:        domainauth.RoleParent,
		},
	}
}
