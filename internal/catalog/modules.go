// Package catalog describes the suite's protected modules, who may see them,
// and the read-only demo records each module lists.
package catalog

import (
	domainauth "github.com/target/academic-suite/internal/domain/auth"
)

// Module keys.
const (
	ModuleLMS        = "lms"
	ModuleEnrollment = "enrollment"
	ModuleLibrary    = "library"
	ModuleHRIS       = "hris"
	ModuleMMS        = "mms"
)

// Module is one protected area of the dashboard.
type Module struct {
	Key         string                     `json:"key"`
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Path        string                     `json:"path"`
	Requirement domainauth.RoleRequirement `json:"-"`
	Features    []string                   `json:"features"`
}

// AllowedRoles lists the roles in the module's requirement.
func (m Module) AllowedRoles() []domainauth.Role { return m.Requirement.Roles() }

var (
	admin   = domainauth.RoleAdministrator
	dean    = domainauth.RoleDean
	teacher = domainauth.RoleTeacher
	student = domainauth.RoleStudent
)

var modules = []Module{
	{
		Key:         ModuleLMS,
		Name:        "Learning Management System",
		Description: "Manage academic content, courses, assignments, and track student progress",
		Path:        "/dashboard/lms",
		Requirement: domainauth.Require(admin, dean, teacher, student),
		Features:    []string{"Course Management", "Assignment Tracking", "Grade Management", "Student Progress"},
	},
	{
		Key:         ModuleEnrollment,
		Name:        "Enrollment System",
		Description: "Handle student registration, admissions, and enrollment processes",
		Path:        "/dashboard/enrollment",
		Requirement: domainauth.Require(admin, dean, teacher),
		Features:    []string{"Student Registration", "Admission Management", "Course Enrollment", "Application Processing"},
	},
	{
		Key:         ModuleLibrary,
		Name:        "Library System & OPAC",
		Description: "Organize and access library resources through the online catalog",
		Path:        "/dashboard/library",
		Requirement: domainauth.Require(admin, dean, teacher, student),
		Features:    []string{"Book Catalog", "Resource Search", "Borrowing Management", "Digital Resources"},
	},
	{
		Key:         ModuleHRIS,
		Name:        "Human Resource Information System",
		Description: "Manage staff records, processes, and human resource operations",
		Path:        "/dashboard/hris",
		Requirement: domainauth.Require(admin, dean),
		Features:    []string{"Employee Records", "Payroll Management", "Performance Tracking", "Leave Management"},
	},
	{
		Key:         ModuleMMS,
		Name:        "Material Management System",
		Description: "Track assets, inventory, and promote smarter resource management",
		Path:        "/dashboard/mms",
		Requirement: domainauth.Require(admin, dean, teacher),
		Features:    []string{"Inventory Tracking", "Asset Management", "Resource Allocation", "Maintenance Scheduling"},
	},
}

// Modules returns every module in navigation order.
func Modules() []Module {
	out := make([]Module, len(modules))
	copy(out, modules)
	return out
}

// ModuleByKey looks up a module by key.
func ModuleByKey(key string) (Module, bool) {
	for _, m := range modules {
		if m.Key == key {
			return m, true
		}
	}
	return Module{}, false
}

// AccessibleModules returns the modules id may open. A nil identity sees none.
func AccessibleModules(id *domainauth.Identity) []Module {
	var out []Module
	for _, m := range modules {
		if domainauth.Evaluate(id, m.Requirement).Outcome == domainauth.Authorized {
			out = append(out, m)
		}
	}
	return out
}

// Welcome returns the dashboard greeting for a role.
func Welcome(role domainauth.Role) string {
	switch role {
	case domainauth.RoleAdministrator:
		return "You have full access to all systems and can manage institutional operations."
	case domainauth.RoleDean:
		return "You can oversee academic programs and manage departmental resources."
	case domainauth.RoleTeacher:
		return "You can manage your courses, students, and academic content."
	case domainauth.RoleStudent:
		return "You can access your courses, library resources, and track your progress."
	case domainauth.RoleParent:
		return "You can monitor your child's academic progress and school communications."
	default:
		return "Welcome to the Academic Management Suite."
	}
}
