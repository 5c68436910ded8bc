package tablestore

import (
	"time"

	"github.com/google/uuid"
)

// Accessors for decoded rows. JSON numbers arrive as float64 and timestamps
// as RFC3339 strings; these helpers normalize both.

// String returns the value of key as a string.
func (r Row) String(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// UUID returns the value of key parsed as a UUID.
func (r Row) UUID(key string) (uuid.UUID, bool) {
	s, ok := r[key].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// UUIDPtr returns the value of key as *uuid.UUID, nil for absent or null.
func (r Row) UUIDPtr(key string) *uuid.UUID {
	if id, ok := r.UUID(key); ok {
		return &id
	}
	return nil
}

// Time returns the value of key parsed as an RFC3339 timestamp.
func (r Row) Time(key string) (time.Time, bool) {
	s, ok := r[key].(string)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// TimePtr returns the value of key as *time.Time, nil for absent or null.
func (r Row) TimePtr(key string) *time.Time {
	if t, ok := r.Time(key); ok {
		return &t
	}
	return nil
}

// Int returns the value of key as an int.
func (r Row) Int(key string) (int, bool) {
	switch v := r[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}

// StringPtr returns the value of key as *string, nil for absent or null.
func (r Row) StringPtr(key string) *string {
	if s, ok := r.String(key); ok {
		return &s
	}
	return nil
}
