// Package profile serves derived, read-only activity snapshots behind a
// TTL cache.
package profile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

type adminCounter interface {
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type submissionCounter interface {
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// Service computes profile snapshots, reading through the injected cache.
type Service struct {
	admins adminCounter
	subs   submissionCounter
	cache  snapshotCache
	log    *slog.Logger

	now func() time.Time

	// resolveName turns a user id into a display name. The platform owns
	// real user identity; the default derives a stable handle from the id.
	resolveName func(uuid.UUID) string
}

// NewService creates the profile service. Pass NopCache{} to disable caching.
func NewService(log *slog.Logger, admins adminCounter, subs submissionCounter, cache snapshotCache) *Service {
	return &Service{
		admins:      admins,
		subs:        subs,
		cache:       cache,
		log:         log.With("service", "profile"),
		now:         time.Now,
		resolveName: defaultDisplayName,
	}
}

// WithClock overrides the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithNameResolver overrides display-name resolution.
func (s *Service) WithNameResolver(resolve func(uuid.UUID) string) *Service {
	s.resolveName = resolve
	return s
}

// Get returns the user's snapshot, from cache when fresh.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (domain.ProfileSnapshot, error) {
	if snap, ok := s.cache.Get(userID); ok {
		return snap, nil
	}

	adminCount, err := s.admins.CountByUser(ctx, userID)
	if err != nil {
		return domain.ProfileSnapshot{}, fmt.Errorf("count admin events: %w", err)
	}
	subCount, err := s.subs.CountByUser(ctx, userID)
	if err != nil {
		return domain.ProfileSnapshot{}, fmt.Errorf("count submissions: %w", err)
	}

	snap := domain.ProfileSnapshot{
		UserID:          userID,
		DisplayName:     s.resolveName(userID),
		AdminEventCount: adminCount,
		SubmissionCount: subCount,
		GeneratedAt:     s.now(),
	}
	s.cache.Add(userID, snap)

	s.log.DebugContext(ctx, "profile snapshot computed",
		slog.String("user_id", userID.String()),
	)

	return snap, nil
}

// Invalidate drops the user's cached snapshot so the next Get recomputes it.
func (s *Service) Invalidate(userID uuid.UUID) {
	s.cache.Remove(userID)
}

func defaultDisplayName(userID uuid.UUID) string {
	return "user-" + userID.String()[:8]
}
