package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
	"github.com/hackweekhq/hackweek-backend/internal/service/event"
	"github.com/hackweekhq/hackweek-backend/pkg/ctxutil"
)

// SubmissionHandler serves submission intake.
type SubmissionHandler struct {
	events *event.Service
	log    *slog.Logger
}

// NewSubmissionHandler creates a SubmissionHandler.
func NewSubmissionHandler(log *slog.Logger, events *event.Service) *SubmissionHandler {
	return &SubmissionHandler{events: events, log: log.With("handler", "submissions")}
}

type createSubmissionRequest struct {
	EventID     *string `json:"eventId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	SourceType  string  `json:"sourceType"`
}

type submissionResponse struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	SourceType string  `json:"sourceType"`
	EventID    *string `json:"eventId"`
	Synced     bool    `json:"synced"`
}

// Create handles POST /submissions.
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := ctxutil.ActorIDFromCtx(r.Context())
	if !ok {
		writeError(w, r, h.log, domain.ErrUnauthorized)
		return
	}

	var req createSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json body"})
		return
	}

	var eventID *uuid.UUID
	if req.EventID != nil {
		id, err := uuid.Parse(*req.EventID)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
			return
		}
		eventID = &id
	}

	sub, err := h.events.CreateSubmission(r.Context(), event.CreateSubmissionInput{
		EventID:     eventID,
		UserID:      actorID,
		Title:       req.Title,
		Description: req.Description,
		SourceType:  domain.SourceType(req.SourceType),
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	resp := submissionResponse{
		ID:         sub.ID.String(),
		Title:      sub.Title,
		SourceType: sub.SourceType.String(),
		Synced:     sub.IsSynced(),
	}
	if sub.EventID != nil {
		s := sub.EventID.String()
		resp.EventID = &s
	}
	writeJSON(w, http.StatusCreated, resp)
}
