package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/datavault-io/watchlist/pkg/log"
	"github.com/datavault-io/watchlist/pkg/timeutil"
	"github.com/datavault-io/watchlist/pkg/types"
)

// buildDateQuery builds a dateTime query string from an ISO 8601 UTC
// timestamp. The Watchlist API expects literal colons, so the percent-encoding
// of ':' is reversed after encoding.
func buildDateQuery(isoTimestamp string) string {
	encoded := url.Values{"dateTime": {isoTimestamp}}.Encode()
	return strings.ReplaceAll(encoded, "%3A", ":")
}

// joinURL attaches a query string to a base URL, stripping one trailing slash
// from the base. The base is not validated.
func joinURL(baseURL, query string) string {
	base := strings.TrimSuffix(baseURL, "/")
	return base + "?" + query
}

// inferTimestamp infers the timestamp of a retrieved configuration from the
// request that produced the response. A request without a query string asked
// for the currently active configuration, so the response Date header is the
// configuration's timestamp. A request with a dateTime query asked for the
// configuration active at that instant, so the query value is the timestamp;
// the Date header would only say "now".
func inferTimestamp(resp *http.Response) (string, error) {
	query := resp.Request.URL.RawQuery
	if query == "" {
		return timeutil.Convert(resp.Header.Get("Date"), timeutil.CompactLayout)
	}
	parts := strings.SplitN(query, "=", 2)
	if len(parts) != 2 {
		return "", types.NewParseError(fmt.Sprintf("malformed query string %q", query))
	}
	return timeutil.Convert(parts[1], timeutil.CompactLayout)
}

// RetrieveConfig retrieves the active configuration, or, when isoTimestamp is
// non-empty, the configuration active at that instant. isoTimestamp must be an
// ISO 8601 UTC timestamp. Any non-2xx status yields an HTTPError.
func (c *Client) RetrieveConfig(ctx context.Context, isoTimestamp string) (types.RetrievedConfig, error) {
	endpoint := c.options.BaseURL
	if isoTimestamp != "" {
		endpoint = joinURL(endpoint, buildDateQuery(isoTimestamp))
	}

	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return types.RetrievedConfig{}, err
	}

	resp, err := c.do(req)
	if err != nil {
		return types.RetrievedConfig{}, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return types.RetrievedConfig{}, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.RetrievedConfig{}, fmt.Errorf("failed to read configuration body: %w", err)
	}

	timestamp, err := inferTimestamp(resp)
	if err != nil {
		return types.RetrievedConfig{}, err
	}

	c.logger.Info("configuration retrieved", log.Str("timestamp", timestamp), log.Int("bytes", len(body)))
	return types.RetrievedConfig{Timestamp: timestamp, Body: body}, nil
}

// SubmitConfig submits a configuration file as a multipart upload and returns
// the request summary. The file is sent as-is; validate it first with
// watchlist.ValidateFile. Any non-2xx status yields an HTTPError.
func (c *Client) SubmitConfig(ctx context.Context, path string) (types.RequestSummary, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return types.RequestSummary{}, fmt.Errorf("failed to read configuration file: %w", err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return types.RequestSummary{}, fmt.Errorf("failed to build upload payload: %w", err)
	}
	if _, err := part.Write(payload); err != nil {
		return types.RequestSummary{}, fmt.Errorf("failed to build upload payload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return types.RequestSummary{}, fmt.Errorf("failed to build upload payload: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.options.BaseURL, &buf)
	if err != nil {
		return types.RequestSummary{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.do(req)
	if err != nil {
		return types.RequestSummary{}, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return types.RequestSummary{}, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.RequestSummary{}, fmt.Errorf("failed to read summary body: %w", err)
	}

	summary, err := types.DecodeActionSummary(body)
	if err != nil {
		return types.RequestSummary{}, err
	}

	c.logger.Info("configuration submitted",
		log.Int("created", summary.NbCreated),
		log.Int("updated", summary.NbUpdated),
		log.Int("failed", summary.NbFailed),
		log.Int("deactivated", summary.NbDeactivated),
	)
	return types.RequestSummary{
		SubmissionTime: resp.Header.Get("Date"),
		Summary:        summary,
	}, nil
}
