package httpx

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/target/academic-suite/internal/adapters/directory"
	authmocks "github.com/target/academic-suite/internal/mocks/auth"
	"github.com/target/academic-suite/internal/observability/metrics"
	"github.com/target/academic-suite/internal/service"
)

type testEnv struct {
	router  http.Handler
	svc     *service.AuthService
	store   *authmocks.MemorySessionStore
	metrics *metrics.Auth
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := authmocks.NewMemorySessionStore()
	m := metrics.NewAuth()
	svc, err := service.NewAuthService(service.AuthServiceOptions{
		Directory: directory.Default(),
		Sessions:  store,
		Logger:    discardLogger(),
		Metrics:   m,
	})
	require.NoError(t, err)

	return &testEnv{
		router: NewRouter(RouterServices{
			Auth:    svc,
			Metrics: m.Handler(),
			Logger:  discardLogger(),
		}),
		svc:     svc,
		store:   store,
		metrics: m,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// client is a caller with a stable client cookie.
type client struct {
	t   *testing.T
	env *testEnv
	id  string
}

func (e *testEnv) newClient(t *testing.T) *client {
	return &client{t: t, env: e, id: uuid.NewString()}
}

func (c *client) do(method, path, body string, header ...string) *httptest.ResponseRecorder {
	c.t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.AddCookie(&http.Cookie{Name: ClientCookieName, Value: c.id})
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	c.env.router.ServeHTTP(rec, req)
	return rec
}

func (c *client) login(email string) {
	c.t.Helper()
	rec := c.do(http.MethodPost, "/api/auth/login", `{"email":"`+email+`","password":"secret"}`)
	require.Equal(c.t, http.StatusOK, rec.Code, rec.Body.String())
}
