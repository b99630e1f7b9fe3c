// Package metrics exposes Prometheus instrumentation for authentication and gating.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login results used as label values.
const (
	LoginSuccess  = "success"
	LoginInvalid  = "invalid_credentials"
	LoginCanceled = "canceled"
)

// Auth groups the collectors recorded by the auth service and the role gate.
// A nil *Auth is valid and records nothing.
type Auth struct {
	registry        *prometheus.Registry
	logins          *prometheus.CounterVec
	gateDecisions   *prometheus.CounterVec
	residentClients prometheus.Gauge
	storeErrors     *prometheus.CounterVec
}

// NewAuth creates collectors on a fresh registry, including Go runtime and process collectors.
func NewAuth() *Auth {
	reg := prometheus.NewRegistry()
	m := &Auth{
		registry: reg,
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "academic_suite_logins_total",
			Help: "Login attempts by result.",
		}, []string{"result"}),
		gateDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "academic_suite_gate_decisions_total",
			Help: "Role gate decisions by outcome.",
		}, []string{"outcome"}),
		residentClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "academic_suite_resident_clients",
			Help: "Client sessions currently held in memory.",
		}),
		storeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "academic_suite_session_store_errors_total",
			Help: "Session store failures by operation.",
		}, []string{"op"}),
	}
	reg.MustRegister(
		m.logins,
		m.gateDecisions,
		m.residentClients,
		m.storeErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveLogin counts a login attempt.
func (m *Auth) ObserveLogin(result string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(result).Inc()
}

// ObserveGate counts a gate decision.
func (m *Auth) ObserveGate(outcome string) {
	if m == nil {
		return
	}
	m.gateDecisions.WithLabelValues(outcome).Inc()
}

// SetResidentClients reports the size of the in-memory client registry.
func (m *Auth) SetResidentClients(n int) {
	if m == nil {
		return
	}
	m.residentClients.Set(float64(n))
}

// ObserveStoreError counts a failed save, load or clear.
func (m *Auth) ObserveStoreError(op string) {
	if m == nil {
		return
	}
	m.storeErrors.WithLabelValues(op).Inc()
}

// Registry exposes the underlying registry for tests and custom exporters.
func (m *Auth) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Auth) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
