package httpx

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestLogin_UnknownEmail(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)

	rec := c.do(http.MethodPost, "/api/auth/login", `{"email":"nobody@university.edu","password":"x"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec.Body.Bytes())
	assert.Equal(t, "invalid_credentials", body["error"])
	assert.Equal(t, "Invalid email or password", body["message"])

	state := decodeBody(t, c.do(http.MethodGet, "/api/auth/state", "").Body.Bytes())
	assert.Nil(t, state["user"])
	assert.Equal(t, false, state["is_loading"])
	assert.Equal(t, "Invalid email or password", state["error"])
	assert.Equal(t, 0, env.store.Saves())
}

func TestLogin_KnownEmailAnyPassword(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)

	rec := c.do(http.MethodPost, "/api/auth/login", `{"email":"dean@university.edu","password":"whatever"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec.Body.Bytes())
	assert.Equal(t, true, body["success"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Dean", user["role"])
	assert.Equal(t, "Prof. Michael Chen", user["name"])

	saved, ok := env.store.Peek(env.svc.SlotKey(c.id))
	require.True(t, ok)
	assert.Equal(t, "dean@university.edu", saved.Email)

	state := decodeBody(t, c.do(http.MethodGet, "/api/auth/state", "").Body.Bytes())
	assert.NotNil(t, state["user"])
	assert.Nil(t, state["error"])
}

func TestLogin_EmailIsCaseSensitive(t *testing.T) {
	env := newTestEnv(t)
	rec := env.newClient(t).do(http.MethodPost, "/api/auth/login", `{"email":"Dean@university.edu","password":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		errCode string
	}{
		{name: "malformed json", body: `{"email":`, errCode: "invalid_json"},
		{name: "unknown field", body: `{"email":"a","password":"b","remember":true}`, errCode: "invalid_json"},
		{name: "missing password", body: `{"email":"dean@university.edu"}`, errCode: "missing_credentials"},
		{name: "missing email", body: `{"password":"x"}`, errCode: "missing_credentials"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec := env.newClient(t).do(http.MethodPost, "/api/auth/login", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.errCode, decodeBody(t, rec.Body.Bytes())["error"])
		})
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)
	c.login("teacher@university.edu")

	rec := c.do(http.MethodPost, "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)

	_, ok := env.store.Peek(env.svc.SlotKey(c.id))
	assert.False(t, ok)
	state := decodeBody(t, c.do(http.MethodGet, "/api/auth/state", "").Body.Bytes())
	assert.Nil(t, state["user"])
	assert.Nil(t, state["error"])
}

func TestState_IsolatedPerClient(t *testing.T) {
	env := newTestEnv(t)
	a := env.newClient(t)
	b := env.newClient(t)
	a.login("admin@university.edu")

	state := decodeBody(t, b.do(http.MethodGet, "/api/auth/state", "").Body.Bytes())
	assert.Nil(t, state["user"])
}

func TestAccess(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)

	anon := decodeBody(t, c.do(http.MethodGet, "/api/auth/access?roles=Student", "").Body.Bytes())
	assert.Equal(t, false, anon["has_access"])
	assert.Equal(t, "unauthenticated", anon["outcome"])

	c.login("student@university.edu")

	tests := []struct {
		roles   string
		access  bool
		outcome string
	}{
		{roles: "Administrator,Dean", access: false, outcome: "forbidden"},
		{roles: "Student", access: true, outcome: "authorized"},
		{roles: "", access: false, outcome: "forbidden"},
		{roles: "Teacher,%20Student", access: true, outcome: "authorized"},
	}
	for _, tt := range tests {
		t.Run(tt.roles, func(t *testing.T) {
			rec := c.do(http.MethodGet, "/api/auth/access?roles="+tt.roles, "")
			require.Equal(t, http.StatusOK, rec.Code)
			body := decodeBody(t, rec.Body.Bytes())
			assert.Equal(t, tt.access, body["has_access"])
			assert.Equal(t, tt.outcome, body["outcome"])
		})
	}

	rec := c.do(http.MethodGet, "/api/auth/access?roles=Janitor", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginPage(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)

	for _, path := range []string{"/", LoginPath} {
		rec := c.do(http.MethodGet, path, "", "Accept", "text/html")
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), "Sign In")
		assert.Contains(t, rec.Body.String(), `fetch("/api/auth/login"`)
	}

	c.do(http.MethodPost, "/api/auth/login", `{"email":"nobody@university.edu","password":"x"}`)
	rec := c.do(http.MethodGet, LoginPath, "", "Accept", "text/html")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")

	c.login("teacher@university.edu")
	rec = c.do(http.MethodGet, LoginPath, "", "Accept", "text/html")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestUnauthenticatedFallbackLinkResolves(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)

	rec := c.do(http.MethodGet, "/dashboard", "", "Accept", "text/html")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), `href="`+LoginPath+`"`)

	rec = c.do(http.MethodGet, LoginPath, "", "Accept", "text/html")
	assert.Equal(t, http.StatusOK, rec.Code)
}
