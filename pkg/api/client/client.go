// Package client implements the HTTP client for the Watchlist API.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/datavault-io/watchlist/internal/config"
	"github.com/datavault-io/watchlist/pkg/log"
	"github.com/datavault-io/watchlist/pkg/types"
	"github.com/datavault-io/watchlist/pkg/version"
)

// ClientOptions holds configuration options for the API client.
type ClientOptions struct {
	// BaseURL is the Watchlist API endpoint serving both GET and POST.
	BaseURL string

	// Credentials used for basic authentication on every request.
	Credentials types.Credentials

	// Timeout bounds a single API call, transport included.
	Timeout time.Duration

	// UserAgent sent with every request.
	UserAgent string

	// Logger
	Logger log.Logger

	// HTTPClient overrides the underlying HTTP client, mainly for tests.
	HTTPClient *http.Client
}

// DefaultClientOptions returns the default client options.
func DefaultClientOptions() *ClientOptions {
	return &ClientOptions{
		BaseURL:   config.DefaultEndpoint,
		Timeout:   config.DefaultTimeout,
		UserAgent: "watchlist-cli/" + version.Version,
		Logger:    log.GetDefaultLogger().WithComponent("api-client"),
	}
}

// Client provides a client for interacting with the Watchlist API.
type Client struct {
	options    *ClientOptions
	httpClient *http.Client
	logger     log.Logger
}

// NewClient creates a new API client with the given options.
func NewClient(options *ClientOptions) (*Client, error) {
	if options == nil {
		options = DefaultClientOptions()
	}
	if options.BaseURL == "" {
		return nil, fmt.Errorf("no Watchlist API endpoint configured")
	}

	logger := options.Logger
	if logger == nil {
		logger = log.GetDefaultLogger().WithComponent("api-client")
	}

	httpClient := options.HTTPClient
	if httpClient == nil {
		timeout := options.Timeout
		if timeout == 0 {
			timeout = config.DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		options:    options,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// newRequest builds a request carrying basic auth, the user agent and a
// request ID for correlation with vendor-side logs.
func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", method, err)
	}
	req.SetBasicAuth(c.options.Credentials.Username, c.options.Credentials.Password)
	if c.options.UserAgent != "" {
		req.Header.Set("User-Agent", c.options.UserAgent)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

// do performs the request and logs the outcome. The caller owns the response
// body.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	c.logger.Debug("sending request",
		log.Str("method", req.Method),
		log.Str("url", req.URL.String()),
		log.Str("request_id", req.Header.Get("X-Request-ID")),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("request failed", log.Err(err))
		return nil, fmt.Errorf("failed to reach Watchlist API: %w", err)
	}

	c.logger.Debug("received response",
		log.Int("status", resp.StatusCode),
		log.Str("request_id", req.Header.Get("X-Request-ID")),
	)
	return resp, nil
}

// checkStatus turns any non-2xx response into an HTTPError carrying the
// status code and body.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	return types.NewHTTPError(resp.StatusCode, body)
}
