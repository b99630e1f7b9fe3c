package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	domainauth "github.com/target/academic-suite/internal/domain/auth"
	apperrors "github.com/target/academic-suite/internal/errors"
)

// AuthServiceInterface defines the auth operations the HTTP layer needs.
type AuthServiceInterface interface {
	Authorizer
	Login(ctx context.Context, clientID, email, password string) (bool, domainauth.AuthState, error)
	Logout(ctx context.Context, clientID string) error
	State(ctx context.Context, clientID string) (domainauth.AuthState, error)
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc    AuthServiceInterface
	Logger *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool                 `json:"success"`
	User    *domainauth.Identity `json:"user"`
}

type stateResponse struct {
	User      *domainauth.Identity `json:"user"`
	IsLoading bool                 `json:"is_loading"`
	Error     *string              `json:"error"`
}

func newStateResponse(s domainauth.AuthState) stateResponse {
	resp := stateResponse{User: s.Identity, IsLoading: s.IsLoading}
	if s.LastError != "" {
		msg := s.LastError
		resp.Error = &msg
	}
	return resp
}

// Login authenticates the caller's client by email.
// POST /api/auth/login {"email": "...", "password": "..."}.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_credentials",
			Err:     errors.New("email and password are required"),
		})
		return
	}

	ok, state, err := h.Svc.Login(r.Context(), ClientIDFromContext(r.Context()), req.Email, req.Password)
	if err != nil {
		if apperrors.IsCanceled(err) {
			h.logger().InfoContext(r.Context(), "login abandoned by client")
		} else {
			h.logger().ErrorContext(r.Context(), "login failed", "error", err)
		}
		WriteAppError(w, err)
		return
	}
	if !ok {
		WriteJSON(w, http.StatusUnauthorized, map[string]string{
			"error":   "invalid_credentials",
			"message": state.LastError,
		})
		return
	}

	WriteJSON(w, http.StatusOK, loginResponse{Success: true, User: state.Identity})
}

// LoginPage serves the browser sign-in form. Signed-in clients go straight to the dashboard.
// GET / and GET /login.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	state, err := h.Svc.State(r.Context(), ClientIDFromContext(r.Context()))
	if err != nil {
		h.logger().ErrorContext(r.Context(), "load auth state", "error", err)
		WriteAppError(w, err)
		return
	}
	if state.Authenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	renderLogin(w, h.logger(), loginPageData{Error: state.LastError})
}

// Logout signs the caller's client out.
// POST /api/auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Logout(r.Context(), ClientIDFromContext(r.Context())); err != nil {
		h.logger().ErrorContext(r.Context(), "logout failed", "error", err)
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// State reports the caller's auth state.
// GET /api/auth/state.
func (h *AuthHandlers) State(w http.ResponseWriter, r *http.Request) {
	state, err := h.Svc.State(r.Context(), ClientIDFromContext(r.Context()))
	if err != nil {
		h.logger().ErrorContext(r.Context(), "load auth state", "error", err)
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, newStateResponse(state))
}

// Access answers whether the caller holds one of the listed roles.
// GET /api/auth/access?roles=Administrator,Dean.
func (h *AuthHandlers) Access(w http.ResponseWriter, r *http.Request) {
	req, err := domainauth.ParseRequirement(r.URL.Query().Get("roles"))
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_roles", Err: err})
		return
	}

	decision, err := h.Svc.Authorize(r.Context(), ClientIDFromContext(r.Context()), req)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "authorize", "error", err)
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"has_access": decision.Outcome == domainauth.Authorized,
		"outcome":    decision.Outcome.String(),
	})
}
