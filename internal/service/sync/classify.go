package sync

import (
	"strings"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

// ClassifyGuidance maps a run outcome to an error category, a retryable flag
// and free-text guidance. It is a pure function of the persisted status and
// the last error text, so stored states can be re-classified at read time.
func ClassifyGuidance(status domain.SyncStatus, lastError string) (domain.SyncErrorCategory, bool, string) {
	if status == domain.SyncComplete || status == domain.SyncNotStarted {
		return domain.SyncErrNone, false, ""
	}

	msg := strings.ToLower(lastError)

	switch {
	case strings.Contains(msg, "only event admins"),
		strings.Contains(msg, "permission denied"):
		return domain.SyncErrPermission, false,
			"Only event admins can sync submissions. Ask an admin to run it."

	case strings.Contains(msg, "rate limit"),
		strings.Contains(msg, "timeout"),
		strings.Contains(msg, "network"):
		return domain.SyncErrTransient, true,
			"The library system was temporarily unavailable. Retry the sync in a few minutes."

	case strings.Contains(msg, "validation"),
		strings.Contains(msg, "invalid"):
		return domain.SyncErrValidation, false,
			"Some submissions have data the library system rejects. Fix them before retrying."
	}

	switch status {
	case domain.SyncPartial:
		return domain.SyncErrPartialFailure, true,
			"Some submissions did not sync. Retry to push the remaining ones; already-synced items are skipped."
	case domain.SyncFailed:
		return domain.SyncErrUnknown, true,
			"The sync failed for an unrecognized reason. Retry, and contact support if it keeps failing."
	}
	return domain.SyncErrNone, false, ""
}
