package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Health      *HealthHandler
	Events      *EventHandler
	Submissions *SubmissionHandler
	Sync        *SyncHandler
	Profiles    *ProfileHandler
}

// NewRouter mounts all REST routes. Middleware is applied by the caller.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /events", h.Events.Create)
	mux.HandleFunc("GET /events/{id}", h.Events.Get)
	mux.HandleFunc("POST /events/{id}/advance", h.Events.Advance)
	mux.HandleFunc("DELETE /events/{id}", h.Events.Delete)

	mux.HandleFunc("POST /events/{id}/sync", h.Sync.Run)
	mux.HandleFunc("POST /events/{id}/sync/retry", h.Sync.Retry)
	mux.HandleFunc("GET /events/{id}/sync", h.Sync.Status)

	mux.HandleFunc("POST /submissions", h.Submissions.Create)

	mux.HandleFunc("GET /profiles/{id}", h.Profiles.Get)

	return mux
}
