package service

import (
	"strings"
	"time"

	apperrors "task-tracker-backend/internal/errors"
)

// Layouts accepted without an explicit offset; they are read in the configured default zone.
var localDatetimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// NormalizeDatetime converts a client-supplied datetime to UTC. An empty string yields nil.
// Inputs carrying an offset are honored; zone-less inputs are interpreted in loc.
func NormalizeDatetime(raw string, loc *time.Location) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		utc := t.UTC().Truncate(time.Second)
		return &utc, nil
	}
	for _, layout := range localDatetimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			utc := t.UTC()
			return &utc, nil
		}
	}

	return nil, apperrors.NewValidationError("targetDatetime", "Invalid targetDatetime: "+raw)
}

// FormatDatetime renders a stored datetime in the canonical RFC 3339 UTC form
func FormatDatetime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
