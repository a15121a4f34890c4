package types

import (
	"errors"
	"fmt"
	"net/http"
)

// FormatError reports a watchlist configuration file that violates the
// required CSV grammar. Line is 1-based for data rows and 0 for the header.
type FormatError struct {
	Line   int
	Detail string
}

// Error returns the error message.
func (e *FormatError) Error() string {
	if e.Line == 0 {
		return e.Detail
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Detail)
}

// NewFormatError creates a new FormatError for the given line.
func NewFormatError(line int, detail string) *FormatError {
	return &FormatError{Line: line, Detail: detail}
}

// IsFormatError checks if an error is a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// CredentialError reports missing API credentials.
type CredentialError struct {
	Detail string
}

// Error returns the error message.
func (e *CredentialError) Error() string {
	return e.Detail
}

// NewCredentialError creates a new CredentialError with the given message.
func NewCredentialError(detail string) *CredentialError {
	return &CredentialError{Detail: detail}
}

// IsCredentialError checks if an error is a CredentialError.
func IsCredentialError(err error) bool {
	var ce *CredentialError
	return errors.As(err, &ce)
}

// HTTPError reports a non-2xx response from the Watchlist API. Body holds the
// raw response body, which the API may use for additional diagnostics.
type HTTPError struct {
	Status int
	Body   []byte
}

// Error returns the error message, always including the numeric status code.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("request failed with status %d %s", e.Status, http.StatusText(e.Status))
}

// NewHTTPError creates a new HTTPError for the given status code and body.
func NewHTTPError(status int, body []byte) *HTTPError {
	return &HTTPError{Status: status, Body: body}
}

// IsHTTPError checks if an error is an HTTPError.
func IsHTTPError(err error) bool {
	var he *HTTPError
	return errors.As(err, &he)
}

// AsHTTPError returns the HTTPError in err's chain, if any.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

// ParseError reports an unrecognized timestamp grammar or a malformed JSON
// response body.
type ParseError struct {
	Detail string
}

// Error returns the error message.
func (e *ParseError) Error() string {
	return e.Detail
}

// NewParseError creates a new ParseError with the given message.
func NewParseError(detail string) *ParseError {
	return &ParseError{Detail: detail}
}

// IsParseError checks if an error is a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
