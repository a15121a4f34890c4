// Package timeutil normalizes the heterogeneous timestamp strings the
// Watchlist API and its callers produce into canonical UTC strings.
package timeutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/datavault-io/watchlist/pkg/types"
)

// Layouts for the canonical output forms.
const (
	// ISOLayout renders 2020-11-18T15:23:52Z.
	ISOLayout = "2006-01-02T15:04:05Z"

	// CompactLayout renders 20201118T152352Z, the form used in artifact names
	// and retrieved-configuration timestamps.
	CompactLayout = "20060102T150405Z"
)

// parseLayouts are the accepted input grammars: ISO 8601 variants and the
// RFC 1123 family used by HTTP Date headers.
var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
	"Mon, 2 Jan 2006 15:04:05 MST",
	time.RFC850,
	time.ANSIC,
}

// Parse parses a raw UTC timestamp. The wall-clock components of the input
// are kept and the result is tagged UTC regardless of any offset or zone name
// embedded in the string. An unrecognized grammar yields a ParseError.
func Parse(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return retagUTC(t), nil
		}
	}
	return time.Time{}, types.NewParseError(fmt.Sprintf("unrecognized timestamp %q", raw))
}

// retagUTC rebuilds t from its wall-clock components in UTC, discarding
// whatever zone the input carried.
func retagUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// Format renders a UTC instant using the given reference layout. An empty
// layout falls back to ISOLayout.
func Format(t time.Time, layout string) string {
	if layout == "" {
		layout = ISOLayout
	}
	return t.Format(layout)
}

// Convert parses a raw UTC timestamp and reformats it with the given layout.
// This is the primary entry point used elsewhere in the client.
func Convert(raw, layout string) (string, error) {
	t, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return Format(t, layout), nil
}
