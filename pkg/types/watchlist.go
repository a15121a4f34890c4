// Package types defines the domain records exchanged with the Watchlist API.
package types

import (
	"encoding/json"
	"fmt"
)

// Credentials holds the username and password used to access the Watchlist API.
type Credentials struct {
	Username string
	Password string
}

// Validate checks that both credential parts are present.
func (c Credentials) Validate() error {
	switch {
	case c.Username == "" && c.Password == "":
		return NewCredentialError("missing username and password")
	case c.Username == "":
		return NewCredentialError("missing username")
	case c.Password == "":
		return NewCredentialError("missing password")
	}
	return nil
}

// RetrievedConfig holds a configuration retrieved from the Watchlist API.
// Timestamp is in compact form (YYYYMMDDTHHMMSSZ); Body is the raw CSV payload.
type RetrievedConfig struct {
	Timestamp string
	Body      []byte
}

// ActionSummary is the summary of actions the Watchlist API performed as a
// result of a configuration submission.
type ActionSummary struct {
	NbCreated     int      `json:"nbCreated"`
	NbUpdated     int      `json:"nbUpdated"`
	NbFailed      int      `json:"nbFailed"`
	NbDeactivated int      `json:"nbDeactivated"`
	Created       []string `json:"created"`
	Updated       []string `json:"updated"`
	Failed        []string `json:"failed"`
	Deactivated   []string `json:"deactivated"`
}

// actionSummaryKeys are the fields the API contract requires on every
// submission response.
var actionSummaryKeys = []string{
	"nbCreated", "nbUpdated", "nbFailed", "nbDeactivated",
	"created", "updated", "failed", "deactivated",
}

// DecodeActionSummary decodes a submission response body into an
// ActionSummary. The decode is strict: malformed JSON or any missing field is
// a ParseError, so a contract drift surfaces at the boundary instead of as a
// zero value downstream.
func DecodeActionSummary(data []byte) (ActionSummary, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return ActionSummary{}, NewParseError(fmt.Sprintf("malformed summary JSON: %v", err))
	}
	for _, key := range actionSummaryKeys {
		if _, ok := raw[key]; !ok {
			return ActionSummary{}, NewParseError(fmt.Sprintf("summary JSON missing field %q", key))
		}
	}

	var summary ActionSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return ActionSummary{}, NewParseError(fmt.Sprintf("malformed summary JSON: %v", err))
	}
	return summary, nil
}

// RequestSummary holds the outcome of a configuration submission.
// SubmissionTime is the response Date header as received, unparsed.
type RequestSummary struct {
	SubmissionTime string
	Summary        ActionSummary
}
