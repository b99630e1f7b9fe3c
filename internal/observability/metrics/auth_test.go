package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_Counters(t *testing.T) {
	m := NewAuth()

	m.ObserveLogin(LoginSuccess)
	m.ObserveLogin(LoginSuccess)
	m.ObserveLogin(LoginInvalid)
	m.ObserveGate("forbidden")
	m.SetResidentClients(3)
	m.ObserveStoreError("save")

	assert.InDelta(t, 2, testutil.ToFloat64(m.logins.WithLabelValues(LoginSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.logins.WithLabelValues(LoginInvalid)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.gateDecisions.WithLabelValues("forbidden")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.residentClients), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.storeErrors.WithLabelValues("save")), 0)
}

func TestAuth_NilIsNoop(t *testing.T) {
	var m *Auth
	assert.NotPanics(t, func() {
		m.ObserveLogin(LoginSuccess)
		m.ObserveGate("authorized")
		m.SetResidentClients(1)
		m.ObserveStoreError("load")
	})
	assert.Nil(t, m.Registry())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuth_Handler(t *testing.T) {
	m := NewAuth()
	m.ObserveLogin(LoginSuccess)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `academic_suite_logins_total{result="success"} 1`)
}
