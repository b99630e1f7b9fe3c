package httpx

import (
	"context"
	"log/slog"
	"net/http"

	domainauth "github.com/target/academic-suite/internal/domain/auth"
)

// Authorizer evaluates a role requirement for a client.
type Authorizer interface {
	Authorize(ctx context.Context, clientID string, req domainauth.RoleRequirement) (domainauth.Decision, error)
}

// GateOption customizes RequireRoles.
type GateOption func(*gateConfig)

type gateConfig struct {
	fallbackMessage string
	logger          *slog.Logger
}

// WithFallbackMessage replaces the generated Forbidden message.
func WithFallbackMessage(msg string) GateOption {
	return func(c *gateConfig) { c.fallbackMessage = msg }
}

// WithGateLogger sets the logger used for authorization failures.
func WithGateLogger(l *slog.Logger) GateOption {
	return func(c *gateConfig) { c.logger = l }
}

type gateErrorBody struct {
	Error         string            `json:"error"`
	Message       string            `json:"message"`
	RequiredRoles []domainauth.Role `json:"required_roles,omitempty"`
	CurrentRole   domainauth.Role   `json:"current_role,omitempty"`
}

// RequireRoles admits only clients whose identity holds one of req's roles.
// API callers get 401/403 JSON; browsers get the fallback pages. Admitted
// requests carry the identity in their context.
func RequireRoles(authz Authorizer, req domainauth.RoleRequirement, opts ...GateOption) func(http.Handler) http.Handler {
	cfg := gateConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision, err := authz.Authorize(r.Context(), ClientIDFromContext(r.Context()), req)
			if err != nil {
				cfg.logger.ErrorContext(r.Context(), "authorize request", "path", r.URL.Path, "error", err)
				WriteAppError(w, err)
				return
			}

			switch decision.Outcome {
			case domainauth.Authorized:
				next.ServeHTTP(w, r.WithContext(SetIdentityInContext(r.Context(), decision.Identity)))
			case domainauth.Unauthenticated:
				if IsBrowserRequest(r) {
					renderFallback(w, cfg.logger, http.StatusUnauthorized, unauthenticatedPage())
					return
				}
				WriteJSON(w, http.StatusUnauthorized, gateErrorBody{
					Error:   "authentication_required",
					Message: domainauth.UnauthenticatedMessage,
				})
			default:
				msg := decision.Message()
				if cfg.fallbackMessage != "" {
					msg = cfg.fallbackMessage
				}
				if IsBrowserRequest(r) {
					renderFallback(w, cfg.logger, http.StatusForbidden, forbiddenPage(msg))
					return
				}
				body := gateErrorBody{
					Error:         "insufficient_permissions",
					Message:       msg,
					RequiredRoles: decision.Requirement.Roles(),
				}
				if decision.Identity != nil {
					body.CurrentRole = decision.Identity.Role
				}
				WriteJSON(w, http.StatusForbidden, body)
			}
		})
	}
}

// RequireAuth admits any authenticated client regardless of role.
func RequireAuth(authz Authorizer, opts ...GateOption) func(http.Handler) http.Handler {
	return RequireRoles(authz, domainauth.Require(domainauth.AllRoles()...), opts...)
}
