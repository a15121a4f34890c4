package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
)

// JSONFormatter formats log entries as JSON.
type JSONFormatter struct {
	// TimestampFormat overrides the timestamp layout (default RFC 3339).
	TimestampFormat string
}

// Format formats the entry as JSON.
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	layout := time.RFC3339
	if f.TimestampFormat != "" {
		layout = f.TimestampFormat
	}

	data := make(map[string]interface{}, len(entry.Fields)+3)
	data["timestamp"] = entry.Timestamp.Format(layout)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message
	for k, v := range entry.Fields {
		if k != "timestamp" && k != "level" && k != "message" {
			data[k] = v
		}
	}

	return json.Marshal(data)
}

// TextFormatter formats log entries as human-readable text.
type TextFormatter struct {
	TimestampFormat string
	DisableColors   bool
}

// NewTextFormatter creates a new TextFormatter with sensible defaults.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000",
	}
}

var levelColors = map[Level]*color.Color{
	DebugLevel: color.New(color.FgHiBlack),
	InfoLevel:  color.New(color.FgCyan),
	WarnLevel:  color.New(color.FgYellow),
	ErrorLevel: color.New(color.FgRed, color.Bold),
}

// Format formats the entry as text.
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	layout := "2006-01-02T15:04:05.000"
	if f.TimestampFormat != "" {
		layout = f.TimestampFormat
	}

	level := entry.Level.String()
	if !f.DisableColors {
		if c, ok := levelColors[entry.Level]; ok {
			level = c.Sprint(level)
		}
	}

	// Deterministic field order
	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, entry.Fields[k]))
	}

	line := fmt.Sprintf("%s %-5s %s", entry.Timestamp.Format(layout), level, entry.Message)
	if len(parts) > 0 {
		line += " " + strings.Join(parts, " ")
	}

	return []byte(line), nil
}
