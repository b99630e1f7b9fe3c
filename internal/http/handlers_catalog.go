package httpx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/target/academic-suite/internal/catalog"
	domainauth "github.com/target/academic-suite/internal/domain/auth"
)

// CatalogHandlers serves the dashboard and module listings. Every handler runs
// behind the role gate, so the identity is always present in the context.
type CatalogHandlers struct {
	Auth   Authorizer
	Logger *slog.Logger
}

type moduleView struct {
	catalog.Module
	AllowedRoles []domainauth.Role `json:"allowed_roles"`
}

func newModuleViews(ms []catalog.Module) []moduleView {
	out := make([]moduleView, 0, len(ms))
	for _, m := range ms {
		out = append(out, moduleView{Module: m, AllowedRoles: m.AllowedRoles()})
	}
	return out
}

// Overview lists the modules available to the caller with the role welcome text.
// GET /api/modules and GET /dashboard.
func (h *CatalogHandlers) Overview(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())
	WriteJSON(w, http.StatusOK, map[string]any{
		"user":    id,
		"welcome": catalog.Welcome(id.Role),
		"modules": newModuleViews(catalog.AccessibleModules(id)),
	})
}

// Module gates a single dashboard module by its own requirement.
// GET /dashboard/{module}.
func (h *CatalogHandlers) Module(w http.ResponseWriter, r *http.Request) {
	m, ok := catalog.ModuleByKey(chi.URLParam(r, "module"))
	if !ok {
		notFound(w, r)
		return
	}
	gate := RequireRoles(h.Auth, m.Requirement, WithGateLogger(h.Logger))
	gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := IdentityFromContext(r.Context())
		WriteJSON(w, http.StatusOK, map[string]any{
			"module":       moduleView{Module: m, AllowedRoles: m.AllowedRoles()},
			"capabilities": catalog.Capabilities(m.Key, id),
		})
	})).ServeHTTP(w, r)
}

// writeListing writes items, projected through the optional q JMESPath expression.
func writeListing(w http.ResponseWriter, r *http.Request, items any) {
	out, err := catalog.Project(r.URL.Query().Get("q"), items)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"items": out})
}

type courseView struct {
	catalog.Course
	CanEdit bool `json:"can_edit"`
}

// Courses lists the caller's courses.
// GET /api/lms/courses.
func (h *CatalogHandlers) Courses(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())
	courses := catalog.CoursesFor(id)
	views := make([]courseView, 0, len(courses))
	for _, c := range courses {
		views = append(views, courseView{Course: c, CanEdit: catalog.CanEditCourse(id, c)})
	}
	writeListing(w, r, views)
}

// CourseStudents lists students enrolled in a course. Teachers only see rosters
// of courses they teach.
// GET /api/lms/courses/{courseID}/students.
func (h *CatalogHandlers) CourseStudents(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())
	courseID := chi.URLParam(r, "courseID")

	var course *catalog.Course
	for _, c := range catalog.Courses() {
		if c.ID == courseID {
			course = &c
			break
		}
	}
	if course == nil {
		notFound(w, r)
		return
	}
	if id.Role == domainauth.RoleTeacher && !catalog.CanEditCourse(id, *course) {
		WriteJSON(w, http.StatusForbidden, gateErrorBody{
			Error:       "insufficient_permissions",
			Message:     "This roster is restricted to the course instructor.",
			CurrentRole: id.Role,
		})
		return
	}
	writeListing(w, r, catalog.StudentsByCourse(courseID))
}

// Assignments lists the caller's assignments.
// GET /api/lms/assignments.
func (h *CatalogHandlers) Assignments(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())
	writeListing(w, r, catalog.AssignmentsFor(id))
}

// Applications lists enrollment applications.
// GET /api/enrollment/applications.
func (h *CatalogHandlers) Applications(w http.ResponseWriter, r *http.Request) {
	writeListing(w, r, catalog.Applications())
}

// Books lists or searches the library catalog.
// GET /api/library/books?search=.
func (h *CatalogHandlers) Books(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query().Get("search"); q != "" {
		writeListing(w, r, catalog.SearchBooks(q))
		return
	}
	writeListing(w, r, catalog.Books())
}

// Employees lists employee records, optionally for one department.
// GET /api/hris/employees?department=.
func (h *CatalogHandlers) Employees(w http.ResponseWriter, r *http.Request) {
	if d := r.URL.Query().Get("department"); d != "" {
		writeListing(w, r, catalog.EmployeesByDepartment(d))
		return
	}
	writeListing(w, r, catalog.Employees())
}

// Materials lists inventory, optionally filtered by stock status.
// GET /api/mms/materials?status=.
func (h *CatalogHandlers) Materials(w http.ResponseWriter, r *http.Request) {
	if s := r.URL.Query().Get("status"); s != "" {
		writeListing(w, r, catalog.MaterialsByStatus(s))
		return
	}
	writeListing(w, r, catalog.Materials())
}
