package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domainauth "github.com/target/academic-suite/internal/domain/auth"
	apperrors "github.com/target/academic-suite/internal/errors"
	obserrors "github.com/target/academic-suite/internal/observability/errors"
	"github.com/target/academic-suite/internal/observability/metrics"
	"github.com/target/academic-suite/internal/ports"
)

// User-visible login failure messages.
const (
	InvalidCredentialsMessage = "Invalid email or password"
	LoginFailedMessage        = "Login failed. Please try again."
)

// AuthSessionOptions groups dependencies for a single client's AuthSession.
type AuthSessionOptions struct {
	ClientID   string
	Slot       string
	Directory  ports.IdentityDirectory
	Sessions   ports.SessionStore
	LoginDelay time.Duration
	Logger     *slog.Logger
	Metrics    *metrics.Auth
}

// AuthSession owns the authentication state of one client.
//
// Logins and logouts for the client run one at a time; a second call waits for
// the first to finish. Readers never wait on a login and observe IsLoading while one
// is in flight.
type AuthSession struct {
	clientID  string
	slot      string
	directory ports.IdentityDirectory
	sessions  ports.SessionStore
	delay     time.Duration
	logger    *slog.Logger
	metrics   *metrics.Auth

	initOnce sync.Once
	opMu     sync.Mutex // serializes Login and Logout

	mu       sync.RWMutex
	identity *domainauth.Identity
	loading  bool
	lastErr  string
}

// NewAuthSession constructs an uninitialized session. IsLoading reports true until Initialize runs.
func NewAuthSession(opts AuthSessionOptions) *AuthSession {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthSession{
		clientID:  opts.ClientID,
		slot:      opts.Slot,
		directory: opts.Directory,
		sessions:  opts.Sessions,
		delay:     opts.LoginDelay,
		logger:    logger.With("component", "auth_session", "client_id", opts.ClientID),
		metrics:   opts.Metrics,
		loading:   true,
	}
}

// Initialize rehydrates the identity from the session store. Only the first call does any work.
// A store failure is logged and treated as no session.
func (s *AuthSession) Initialize(ctx context.Context) {
	s.initOnce.Do(func() {
		var restored *domainauth.Identity

		res, err := s.sessions.Load(ctx, s.slot)
		if err != nil {
			s.logger.WarnContext(ctx, "session load failed; starting signed out", "error", err, "error_class", obserrors.Classify(err))
			s.metrics.ObserveStoreError("load")
		} else if id, ok := res.Identity(); ok {
			restored = &id
			s.logger.DebugContext(ctx, "session restored", "email", id.Email, "role", id.Role)
		}

		s.mu.Lock()
		s.identity = restored
		s.loading = false
		s.mu.Unlock()
	})
}

// Login resolves email against the directory after the configured delay.
// The password is accepted as given and never inspected.
//
// An unknown email returns false with LastError set to InvalidCredentialsMessage.
// If ctx ends during the delay the session is left untouched, LastError is set to
// LoginFailedMessage and a canceled error is returned.
func (s *AuthSession) Login(ctx context.Context, email, _ string) (bool, error) {
	s.Initialize(ctx)

	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	if err := s.wait(ctx); err != nil {
		s.finish(LoginFailedMessage)
		s.metrics.ObserveLogin(metrics.LoginCanceled)
		s.logger.InfoContext(ctx, "login canceled", "error", err)
		return false, apperrors.Wrap(err, apperrors.ErrCodeCanceled, "login canceled")
	}

	id, ok := s.directory.Resolve(email)
	if !ok {
		s.finish(InvalidCredentialsMessage)
		s.metrics.ObserveLogin(metrics.LoginInvalid)
		s.logger.InfoContext(ctx, "login rejected", "reason", "unknown email")
		return false, nil
	}

	s.mu.Lock()
	s.identity = &id
	s.mu.Unlock()

	if err := s.sessions.Save(ctx, s.slot, id); err != nil {
		s.logger.WarnContext(ctx, "session save failed; login kept in memory only", "error", err, "error_class", obserrors.Classify(err))
		s.metrics.ObserveStoreError("save")
	}

	s.finish("")
	s.metrics.ObserveLogin(metrics.LoginSuccess)
	s.logger.InfoContext(ctx, "login succeeded", "email", id.Email, "role", id.Role)
	return true, nil
}

// Logout clears the identity, the persisted slot and LastError. It always succeeds;
// a store failure is only logged.
func (s *AuthSession) Logout(ctx context.Context) {
	s.Initialize(ctx)

	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	s.identity = nil
	s.lastErr = ""
	s.mu.Unlock()

	if err := s.sessions.Clear(ctx, s.slot); err != nil {
		s.logger.WarnContext(ctx, "session clear failed", "error", err, "error_class", obserrors.Classify(err))
		s.metrics.ObserveStoreError("clear")
	}
	s.logger.InfoContext(ctx, "logout")
}

// CurrentIdentity returns a copy of the signed-in identity, or nil.
func (s *AuthSession) CurrentIdentity() *domainauth.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// IsLoading reports whether initialization or a login is in progress.
func (s *AuthSession) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the most recent login failure message, or "".
func (s *AuthSession) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// State returns a consistent snapshot of all three fields.
func (s *AuthSession) State() domainauth.AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := domainauth.AuthState{IsLoading: s.loading, LastError: s.lastErr}
	if s.identity != nil {
		id := *s.identity
		st.Identity = &id
	}
	return st
}

// Evaluate runs the role gate against the current identity.
func (s *AuthSession) Evaluate(req domainauth.RoleRequirement) domainauth.Decision {
	d := domainauth.Evaluate(s.CurrentIdentity(), req)
	s.metrics.ObserveGate(d.Outcome.String())
	return d
}

// HasAccess reports whether the current identity holds one of roles.
func (s *AuthSession) HasAccess(roles ...domainauth.Role) bool {
	return domainauth.HasAccess(s.CurrentIdentity(), roles...)
}

func (s *AuthSession) finish(lastErr string) {
	s.mu.Lock()
	s.lastErr = lastErr
	s.loading = false
	s.mu.Unlock()
}

func (s *AuthSession) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
