package handlers

import (
	"net/http"
	"time"

	"github.com/proctorlab/telemetry-sink/app"
	"github.com/proctorlab/telemetry-sink/utils"
)

// RootHandler returns a landing message for browsers hitting the API root
func RootHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteOK(w, map[string]string{
			"message": "Proctoring telemetry backend is running.",
			"health":  "/health",
		})
	}
}

// HealthCheck returns a simple health check handler.
// The instance id lets polling dashboards detect a restart: event ids start
// over at 1 when the process restarts.
func HealthCheck(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteOK(w, map[string]string{
			"status":    "ok",
			"instance":  deps.InstanceID.String(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
