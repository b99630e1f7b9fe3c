package httpx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/target/academic-suite/internal/catalog"
	domainauth "github.com/target/academic-suite/internal/domain/auth"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Auth AuthServiceInterface
	// Metrics serves /metrics when non-nil.
	Metrics      http.Handler
	CookieDomain string
	Logger       *slog.Logger
}

// NewRouter builds the application router.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(BrowserDetection())
	r.NotFound(notFound)

	r.Get("/healthz", healthHandler)
	r.Head("/healthz", healthHandler)
	if services.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", services.Metrics)
	}

	authHandlers := &AuthHandlers{Svc: services.Auth, Logger: logger}
	catalogHandlers := &CatalogHandlers{Auth: services.Auth, Logger: logger}
	gate := func(moduleKey string) func(http.Handler) http.Handler {
		m, _ := catalog.ModuleByKey(moduleKey)
		return RequireRoles(services.Auth, m.Requirement, WithGateLogger(logger))
	}
	requireAuth := RequireAuth(services.Auth, WithGateLogger(logger))

	r.Group(func(r chi.Router) {
		r.Use(ClientSlot(services.CookieDomain))

		r.Get("/", authHandlers.LoginPage)
		r.Get(LoginPath, authHandlers.LoginPage)

		r.Route("/api/auth", func(r chi.Router) {
			r.Post("/login", authHandlers.Login)
			r.Post("/logout", authHandlers.Logout)
			r.Get("/state", authHandlers.State)
			r.Get("/access", authHandlers.Access)
		})

		r.With(requireAuth).Get("/api/modules", catalogHandlers.Overview)
		r.With(requireAuth).Get("/dashboard", catalogHandlers.Overview)
		r.Get("/dashboard/{module}", catalogHandlers.Module)

		r.Route("/api/lms", func(r chi.Router) {
			r.Use(gate(catalog.ModuleLMS))
			r.Get("/courses", catalogHandlers.Courses)
			r.Get("/assignments", catalogHandlers.Assignments)
			r.With(RequireRoles(services.Auth,
				domainauth.Require(domainauth.RoleAdministrator, domainauth.RoleDean, domainauth.RoleTeacher),
				WithGateLogger(logger),
			)).Get("/courses/{courseID}/students", catalogHandlers.CourseStudents)
		})
		r.With(gate(catalog.ModuleEnrollment)).Get("/api/enrollment/applications", catalogHandlers.Applications)
		r.With(gate(catalog.ModuleLibrary)).Get("/api/library/books", catalogHandlers.Books)
		r.With(gate(catalog.ModuleHRIS)).Get("/api/hris/employees", catalogHandlers.Employees)
		r.With(gate(catalog.ModuleMMS)).Get("/api/mms/materials", catalogHandlers.Materials)
	})

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	if IsBrowserRequest(r) {
		http.NotFound(w, r)
		return
	}
	WriteJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "message": "resource not found"})
}
