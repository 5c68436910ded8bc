package rest

import (
	"log/slog"
	"net/http"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
	syncsvc "github.com/hackweekhq/hackweek-backend/internal/service/sync"
	"github.com/hackweekhq/hackweek-backend/pkg/ctxutil"
)

// SyncHandler serves the reconciliation endpoints.
type SyncHandler struct {
	sync *syncsvc.Service
	log  *slog.Logger
}

// NewSyncHandler creates a SyncHandler.
func NewSyncHandler(log *slog.Logger, sync *syncsvc.Service) *SyncHandler {
	return &SyncHandler{sync: sync, log: log.With("handler", "sync")}
}

// Run handles POST /events/{id}/sync.
func (h *SyncHandler) Run(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, false)
}

// Retry handles POST /events/{id}/sync/retry.
func (h *SyncHandler) Retry(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, true)
}

func (h *SyncHandler) serve(w http.ResponseWriter, r *http.Request, retry bool) {
	actorID, ok := ctxutil.ActorIDFromCtx(r.Context())
	if !ok {
		writeError(w, r, h.log, domain.ErrUnauthorized)
		return
	}
	eventID, err := pathUUID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}

	var result *domain.SyncResult
	if retry {
		result, err = h.sync.RetrySync(r.Context(), actorID, eventID)
	} else {
		result, err = h.sync.CompleteAndSync(r.Context(), actorID, eventID)
	}
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Status handles GET /events/{id}/sync.
func (h *SyncHandler) Status(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathUUID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}

	state, err := h.sync.Status(r.Context(), eventID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	category, retryable, guidance := syncsvc.ClassifyGuidance(state.Status, state.LastError)
	writeJSON(w, http.StatusOK, domain.SyncResult{
		Status:        state.Status,
		PushedCount:   state.PushedCount,
		SkippedCount:  state.SkippedCount,
		LastError:     state.LastError,
		Category:      category,
		Retryable:     retryable,
		RetryGuidance: guidance,
	})
}
