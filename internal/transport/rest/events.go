package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
	"github.com/hackweekhq/hackweek-backend/internal/service/event"
	"github.com/hackweekhq/hackweek-backend/pkg/ctxutil"
)

// EventHandler serves the event instance endpoints.
type EventHandler struct {
	events *event.Service
	log    *slog.Logger
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(log *slog.Logger, events *event.Service) *EventHandler {
	return &EventHandler{events: events, log: log.With("handler", "events")}
}

type scheduleBody struct {
	RegistrationOpensAt time.Time `json:"registrationOpensAt"`
	TeamFormationAt     time.Time `json:"teamFormationAt"`
	KickoffAt           time.Time `json:"kickoffAt"`
	SubmissionDeadline  time.Time `json:"submissionDeadline"`
	ResultsAt           time.Time `json:"resultsAt"`
}

type rulesBody struct {
	MaxTeamSize           int    `json:"maxTeamSize"`
	MaxSubmissionsPerUser int    `json:"maxSubmissionsPerUser"`
	Theme                 string `json:"theme"`
}

type createEventRequest struct {
	CreationRequestID string       `json:"creationRequestId"`
	Name              string       `json:"name"`
	Icon              string       `json:"icon"`
	Tagline           string       `json:"tagline"`
	Timezone          string       `json:"timezone"`
	ParentPageID      *string      `json:"parentPageId"`
	Schedule          scheduleBody `json:"schedule"`
	Rules             rulesBody    `json:"rules"`
}

type eventResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Icon            string  `json:"icon,omitempty"`
	Tagline         string  `json:"tagline,omitempty"`
	Timezone        string  `json:"timezone"`
	LifecycleStatus string  `json:"lifecycleStatus"`
	PageID          *string `json:"pageId"`
}

func toEventResponse(ev *domain.Event) eventResponse {
	return eventResponse{
		ID:              ev.ID.String(),
		Name:            ev.Name,
		Icon:            ev.Icon,
		Tagline:         ev.Tagline,
		Timezone:        ev.Timezone,
		LifecycleStatus: ev.Status.String(),
		PageID:          ev.PageID,
	}
}

// Create handles POST /events.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := ctxutil.ActorIDFromCtx(r.Context())
	if !ok {
		writeError(w, r, h.log, domain.ErrUnauthorized)
		return
	}

	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json body"})
		return
	}

	ev, err := h.events.CreateEvent(r.Context(), actorID, event.CreateEventInput{
		CreationRequestID: req.CreationRequestID,
		Name:              req.Name,
		Icon:              req.Icon,
		Tagline:           req.Tagline,
		Timezone:          req.Timezone,
		ParentPageID:      req.ParentPageID,
		Schedule: domain.ScheduleConfig{
			RegistrationOpensAt: req.Schedule.RegistrationOpensAt,
			TeamFormationAt:     req.Schedule.TeamFormationAt,
			KickoffAt:           req.Schedule.KickoffAt,
			SubmissionDeadline:  req.Schedule.SubmissionDeadline,
			ResultsAt:           req.Schedule.ResultsAt,
		},
		Rules: domain.RulesConfig{
			MaxTeamSize:           req.Rules.MaxTeamSize,
			MaxSubmissionsPerUser: req.Rules.MaxSubmissionsPerUser,
			Theme:                 domain.Theme(req.Rules.Theme),
		},
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEventResponse(ev))
}

// Get handles GET /events/{id}.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathUUID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}

	ev, err := h.events.GetEvent(r.Context(), eventID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(ev))
}

// Advance handles POST /events/{id}/advance.
func (h *EventHandler) Advance(w http.ResponseWriter, r *http.Request) {
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

	ev, err := h.events.Advance(r.Context(), actorID, eventID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"lifecycleStatus": ev.Status.String()})
}

// Delete handles DELETE /events/{id}. Only draft events can be deleted.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.events.DeleteDraft(r.Context(), actorID, eventID); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue(name))
}
