package writer

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// defaultValue computes a plug value for a NOT-NULL column the candidate did
// not carry: identity for id-like columns, a current timestamp for
// timestamp-like ones, and a human-readable fallback for everything else.
// The team foreign key is handled separately by the linkage resolver.
func defaultValue(column, nameFallback string, now func() time.Time, newID func() uuid.UUID) any {
	switch {
	case isIDColumn(column):
		return newID().String()
	case isTimeColumn(column):
		return now().UTC().Format(time.RFC3339)
	default:
		return nameFallback
	}
}

func isIDColumn(column string) bool {
	return column == "id" || strings.HasSuffix(column, "_id") || strings.HasSuffix(column, "_uuid")
}

func isTimeColumn(column string) bool {
	return strings.HasSuffix(column, "_at") ||
		strings.HasSuffix(column, "_date") ||
		strings.HasSuffix(column, "_time") ||
		column == "date" || column == "timestamp"
}

// isNameColumn reports columns that should carry the record's display name.
func isNameColumn(column string) bool {
	switch column {
	case "name", "title", "label", "slug", "display_name":
		return true
	}
	return false
}
