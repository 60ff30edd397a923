// Package timestamp normalizes the heterogeneous timestamp formats accepted
// on ingest into timezone-naive UTC instants and formats them back for the
// dashboard views.
package timestamp

import (
	"fmt"
	"strings"
	"time"
)

const (
	LayoutFull  = "2006-01-02 15:04:05"
	LayoutClock = "15:04:05"
)

// Accepted input layouts, tried in order. ISO-8601 first (with optional
// fraction and optional zone), then the two space-separated forms.
var parseLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999",
}

type InvalidTimestampError struct {
	Input string
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf(
		"invalid timestamp format: %q. Expected formats: %q, %q or ISO format",
		e.Input, "2006-01-02 15:04:05", "2006-01-02 15:04:05.999999",
	)
}

// Parse converts an input timestamp string into a timezone-naive UTC
// instant. Inputs carrying a zone offset are shifted to UTC and the offset
// is discarded, matching how stored values are compared.
func Parse(input string) (time.Time, error) {
	for _, layout := range parseLayouts {
		t, err := time.Parse(layout, input)
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &InvalidTimestampError{Input: input}
}

// FormatFull renders an instant for table rows.
func FormatFull(t time.Time) string {
	return t.Format(LayoutFull)
}

// FormatClock renders an instant for live-console rows.
func FormatClock(t time.Time) string {
	return t.Format(LayoutClock)
}

// ClockFromRaw reformats a stored raw timestamp string to HH:MM:SS. Raw
// strings that fail to parse degrade to substring extraction and finally to
// the original string unchanged. Never an error.
func ClockFromRaw(raw string) string {
	if t, err := Parse(raw); err == nil {
		return FormatClock(t)
	}
	if strings.Contains(raw, "T") {
		timePart := strings.SplitN(raw, "T", 2)[1]
		return strings.SplitN(timePart, ".", 2)[0]
	}
	if strings.Contains(raw, " ") {
		return strings.SplitN(raw, " ", 2)[1]
	}
	return raw
}

// FullFromRaw reformats a stored raw timestamp string to the table layout,
// keeping the original value when it cannot be parsed.
func FullFromRaw(raw string) string {
	if t, err := Parse(raw); err == nil {
		return FormatFull(t)
	}
	return raw
}
