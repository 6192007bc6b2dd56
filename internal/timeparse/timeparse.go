// Package timeparse normalizes external date representations into a
// comparable time value. Inbound timestamps arrive in whatever shape the
// caller produced, so parsing is deliberately lenient.
package timeparse

import (
	"strconv"
	"strings"
	"time"
)

// Layouts tried in order. Layouts without a zone are read as UTC.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
}

// Millisecond epochs start around 2001-09-09 when read as seconds; any
// numeric value at or above this is treated as milliseconds.
const millisThreshold = 1e12

// Parse converts raw into a UTC time value. It returns ok=false for
// anything unparsable and never panics.
func Parse(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t.UTC(), true
		}
	}

	// Numeric Unix epoch, seconds or milliseconds.
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n >= millisThreshold || n <= -millisThreshold {
			return time.UnixMilli(n).UTC(), true
		}
		return time.Unix(n, 0).UTC(), true
	}

	return time.Time{}, false
}
