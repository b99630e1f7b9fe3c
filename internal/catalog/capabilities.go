package catalog

import domainauth "github.com/target/academic-suite/internal/domain/auth"

// Capability is an action inside a module that needs more than module access.
type Capability string

const (
	CapabilityLMSAnalytics       Capability = "lms.analytics"
	CapabilityReviewApplications Capability = "enrollment.review_applications"
	CapabilityManageCatalog      Capability = "library.manage_catalog"
	CapabilitySubmitAssignments  Capability = "lms.submit_assignments"
)

var capabilityRequirements = map[Capability]domainauth.RoleRequirement{
	CapabilityLMSAnalytics:       domainauth.Require(domainauth.RoleAdministrator, domainauth.RoleDean),
	CapabilityReviewApplications: domainauth.Require(domainauth.RoleAdministrator, domainauth.RoleDean),
	CapabilityManageCatalog:      domainauth.Require(domainauth.RoleAdministrator, domainauth.RoleDean, domainauth.RoleTeacher),
	CapabilitySubmitAssignments:  domainauth.Require(domainauth.RoleStudent),
}

var moduleCapabilities = map[string][]Capability{
	ModuleLMS:        {CapabilityLMSAnalytics, CapabilitySubmitAssignments},
	ModuleEnrollment: {CapabilityReviewApplications},
	ModuleLibrary:    {CapabilityManageCatalog},
}

// Can reports whether id holds capability c. Unknown capabilities are denied.
func Can(id *domainauth.Identity, c Capability) bool {
	req, ok := capabilityRequirements[c]
	if !ok {
		return false
	}
	return domainauth.HasAccess(id, req.Roles()...)
}

// Capabilities maps each capability of a module to whether id holds it.
func Capabilities(moduleKey string, id *domainauth.Identity) map[Capability]bool {
	caps := moduleCapabilities[moduleKey]
	out := make(map[Capability]bool, len(caps))
	for _, c := range caps {
		out[c] = Can(id, c)
	}
	return out
}

// CanEditCourse reports whether id may edit course: only the course's own instructor, as a Teacher.
func CanEditCourse(id *domainauth.Identity, course Course) bool {
	return id != nil && id.Role == domainauth.RoleTeacher && course.Instructor == id.DisplayName
}
