package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	domainauth "github.com/target/academic-suite/internal/domain/auth"
	apperrors "github.com/target/academic-suite/internal/errors"
	"github.com/target/academic-suite/internal/observability/metrics"
	"github.com/target/academic-suite/internal/ports"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultSlotNamespace prefixes every persisted session slot key.
	DefaultSlotNamespace = "academicSuite_user"
	// DefaultLoginDelay is the simulated lookup latency applied to every login.
	DefaultLoginDelay = time.Second
	// DefaultMaxResidentClients bounds how many client sessions stay in memory.
	DefaultMaxResidentClients = 10000
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Directory ports.IdentityDirectory
	Sessions  ports.SessionStore

	// SlotNamespace defaults to DefaultSlotNamespace.
	SlotNamespace string
	// LoginDelay of zero disables the simulated latency.
	LoginDelay time.Duration
	// MaxResidentClients defaults to DefaultMaxResidentClients.
	MaxResidentClients int

	Logger  *slog.Logger
	Metrics *metrics.Auth
}

// AuthService hands out one AuthSession per client and keeps recently used ones resident.
// An evicted client is rebuilt from the session store on its next request.
type AuthService struct {
	directory ports.IdentityDirectory
	sessions  ports.SessionStore
	namespace string
	delay     time.Duration
	logger    *slog.Logger
	metrics   *metrics.Auth

	resident *lru.Cache[string, *AuthSession]
	group    singleflight.Group

	// inFlight pins sessions running Login or Logout so an LRU eviction
	// cannot split a client across two managers.
	pinMu    sync.Mutex
	inFlight map[string]*pinnedSession
}

type pinnedSession struct {
	sess *AuthSession
	refs int
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) (*AuthService, error) {
	if opts.Directory == nil {
		return nil, errors.New("auth service: directory is required")
	}
	if opts.Sessions == nil {
		return nil, errors.New("auth service: session store is required")
	}
	if opts.LoginDelay < 0 {
		return nil, fmt.Errorf("auth service: login delay must not be negative, got %s", opts.LoginDelay)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	namespace := opts.SlotNamespace
	if namespace == "" {
		namespace = DefaultSlotNamespace
	}
	size := opts.MaxResidentClients
	if size <= 0 {
		size = DefaultMaxResidentClients
	}

	s := &AuthService{
		directory: opts.Directory,
		sessions:  opts.Sessions,
		namespace: namespace,
		delay:     opts.LoginDelay,
		logger:    logger,
		metrics:   opts.Metrics,
		inFlight:  make(map[string]*pinnedSession),
	}

	cache, err := lru.NewWithEvict[string, *AuthSession](size, func(clientID string, _ *AuthSession) {
		s.logger.Debug("client session evicted", "client_id", clientID)
	})
	if err != nil {
		return nil, fmt.Errorf("auth service: resident cache: %w", err)
	}
	s.resident = cache
	return s, nil
}

// SlotKey returns the persisted slot key for a client.
func (s *AuthService) SlotKey(clientID string) string {
	return s.namespace + ":" + clientID
}

// Session returns the initialized AuthSession for clientID, creating it on first use.
// Concurrent first requests for the same client share one creation and one store load.
func (s *AuthService) Session(ctx context.Context, clientID string) (*AuthSession, error) {
	if clientID == "" {
		return nil, apperrors.ValidationField("client_id", "client id is required")
	}
	if sess, ok := s.lookup(clientID); ok {
		return sess, nil
	}

	v, err, _ := s.group.Do(clientID, func() (any, error) {
		if sess, ok := s.lookup(clientID); ok {
			return sess, nil
		}
		sess := NewAuthSession(AuthSessionOptions{
			ClientID:   clientID,
			Slot:       s.SlotKey(clientID),
			Directory:  s.directory,
			Sessions:   s.sessions,
			LoginDelay: s.delay,
			Logger:     s.logger,
			Metrics:    s.metrics,
		})
		// Shared by every waiter, so one caller's cancellation must not abort the load.
		sess.Initialize(context.WithoutCancel(ctx))
		s.resident.Add(clientID, sess)
		s.metrics.SetResidentClients(s.resident.Len())
		return sess, nil
	})
	if err != nil {
		return nil, err
	}
	sess, ok := v.(*AuthSession)
	if !ok {
		return nil, fmt.Errorf("auth service: unexpected session type %T", v)
	}
	return sess, nil
}

// lookup returns the resident session, falling back to a pinned one that was
// evicted mid-operation. A pinned hit is made resident again.
func (s *AuthService) lookup(clientID string) (*AuthSession, bool) {
	if sess, ok := s.resident.Get(clientID); ok {
		return sess, true
	}
	s.pinMu.Lock()
	defer s.pinMu.Unlock()
	p, ok := s.inFlight[clientID]
	if !ok {
		return nil, false
	}
	s.resident.Add(clientID, p.sess)
	s.metrics.SetResidentClients(s.resident.Len())
	return p.sess, true
}

// acquire returns clientID's session pinned for a state-changing operation.
// The returned release func must be called once the operation finishes.
func (s *AuthService) acquire(ctx context.Context, clientID string) (*AuthSession, func(), error) {
	sess, err := s.Session(ctx, clientID)
	if err != nil {
		return nil, nil, err
	}

	s.pinMu.Lock()
	defer s.pinMu.Unlock()
	if p, ok := s.inFlight[clientID]; ok {
		p.refs++
		sess = p.sess
	} else {
		// sess may have been evicted and replaced since Session returned.
		if cur, ok := s.resident.Peek(clientID); ok {
			sess = cur
		} else {
			s.resident.Add(clientID, sess)
			s.metrics.SetResidentClients(s.resident.Len())
		}
		s.inFlight[clientID] = &pinnedSession{sess: sess, refs: 1}
	}
	return sess, func() { s.release(clientID) }, nil
}

func (s *AuthService) release(clientID string) {
	s.pinMu.Lock()
	defer s.pinMu.Unlock()
	p, ok := s.inFlight[clientID]
	if !ok {
		return
	}
	if p.refs--; p.refs <= 0 {
		delete(s.inFlight, clientID)
	}
}

// Login runs a login for clientID and returns the resulting state.
func (s *AuthService) Login(ctx context.Context, clientID, email, password string) (bool, domainauth.AuthState, error) {
	sess, release, err := s.acquire(ctx, clientID)
	if err != nil {
		return false, domainauth.AuthState{}, err
	}
	defer release()
	ok, err := sess.Login(ctx, email, password)
	return ok, sess.State(), err
}

// Logout signs clientID out.
func (s *AuthService) Logout(ctx context.Context, clientID string) error {
	sess, release, err := s.acquire(ctx, clientID)
	if err != nil {
		return err
	}
	defer release()
	sess.Logout(ctx)
	return nil
}

// State returns clientID's current state.
func (s *AuthService) State(ctx context.Context, clientID string) (domainauth.AuthState, error) {
	sess, err := s.Session(ctx, clientID)
	if err != nil {
		return domainauth.AuthState{}, err
	}
	return sess.State(), nil
}

// Authorize evaluates req against clientID's identity.
func (s *AuthService) Authorize(ctx context.Context, clientID string, req domainauth.RoleRequirement) (domainauth.Decision, error) {
	sess, err := s.Session(ctx, clientID)
	if err != nil {
		return domainauth.Decision{}, err
	}
	return sess.Evaluate(req), nil
}

// ResidentClients reports how many client sessions are held in memory.
func (s *AuthService) ResidentClients() int {
	return s.resident.Len()
}
