package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hackweekhq/hackweek-backend/internal/service/profile"
)

// ProfileHandler serves derived profile snapshots.
type ProfileHandler struct {
	profiles *profile.Service
	log      *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(log *slog.Logger, profiles *profile.Service) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, log: log.With("handler", "profiles")}
}

type profileResponse struct {
	UserID          string    `json:"userId"`
	DisplayName     string    `json:"displayName"`
	AdminEventCount int       `json:"adminEventCount"`
	SubmissionCount int       `json:"submissionCount"`
	GeneratedAt     time.Time `json:"generatedAt"`
}

// Get handles GET /profiles/{id}.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid user id"})
		return
	}

	snap, err := h.profiles.Get(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{
		UserID:          snap.UserID.String(),
		DisplayName:     snap.DisplayName,
		AdminEventCount: snap.AdminEventCount,
		SubmissionCount: snap.SubmissionCount,
		GeneratedAt:     snap.GeneratedAt,
	})
}
