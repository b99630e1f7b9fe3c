package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_Health(t *testing.T) {
	env := newTestEnv(t)
	for _, method := range []string{http.MethodGet, http.MethodHead} {
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, httptest.NewRequest(method, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code, method)
	}
}

func TestRouter_MetricsExposeAuthCounters(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)
	c.login("admin@university.edu")
	c.do(http.MethodGet, "/api/hris/employees", "")

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `academic_suite_logins_total{result="success"} 1`)
	assert.Contains(t, body, `academic_suite_gate_decisions_total{outcome="authorized"} 1`)
}

func TestRouter_MetricsDisabled(t *testing.T) {
	router := NewRouter(RouterServices{Auth: newTestEnv(t).svc, Logger: discardLogger()})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_NotFoundJSONForAPI(t *testing.T) {
	env := newTestEnv(t)
	rec := env.newClient(t).do(http.MethodGet, "/api/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeBody(t, rec.Body.Bytes())["error"])
}

func TestRouter_MintsClientCookie(t *testing.T) {
	env := newTestEnv(t)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/state", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == ClientCookieName {
			found = true
		}
	}
	assert.True(t, found)
}
