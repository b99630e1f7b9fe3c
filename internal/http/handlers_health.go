package httpx

import (
	"net/http"
)

const healthResponse = `{"status":"ok","service":"academic-suite"}` + "\n"

// healthHandler answers liveness probes. HEAD gets headers only.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write([]byte(healthResponse))
}
