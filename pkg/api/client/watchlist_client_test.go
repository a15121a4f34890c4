package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/datavault-io/watchlist/pkg/log"
	"github.com/datavault-io/watchlist/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDateQuery(t *testing.T) {
	assert.Equal(t, "dateTime=2020-11-20T16:09:40Z", buildDateQuery("2020-11-20T16:09:40Z"))
}

func TestJoinURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		expected string
	}{
		{"no trailing slash", "https://host/path", "https://host/path?dateTime=X"},
		{"trailing slash stripped", "https://host/path/", "https://host/path?dateTime=X"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, joinURL(tt.base, "dateTime=X"))
		})
	}
}

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	c, err := NewClient(&ClientOptions{
		BaseURL:     srv.URL,
		Credentials: types.Credentials{Username: "user", Password: "pass"},
		HTTPClient:  srv.Client(),
		Logger:      log.NewLogger(log.WithLevel(log.ErrorLevel)),
	})
	require.NoError(t, err)
	return c
}

func TestRetrieveConfigActive(t *testing.T) {
	const body = "sourceId,RTSsymbol\n207,F:FDAX\\Z20\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "user", user)
		assert.Equal(t, "pass", pass)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Date", "Fri, 20 Nov 2020 11:47:40 GMT")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	cfg, err := newTestClient(t, srv).RetrieveConfig(context.Background(), "")
	require.NoError(t, err)

	// No query string on the request: the timestamp comes from the Date header.
	assert.Equal(t, "20201120T114740Z", cfg.Timestamp)
	assert.Equal(t, []byte(body), cfg.Body)
}

func TestRetrieveConfigAtTimestamp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "dateTime=2020-11-18T12:30:52Z", r.URL.RawQuery)

		// The Date header says "now"; it must not win over the query value.
		w.Header().Set("Date", "Fri, 20 Nov 2020 11:47:40 GMT")
		w.Write([]byte("deactivated config"))
	}))
	defer srv.Close()

	cfg, err := newTestClient(t, srv).RetrieveConfig(context.Background(), "2020-11-18T12:30:52Z")
	require.NoError(t, err)
	assert.Equal(t, "20201118T123052Z", cfg.Timestamp)
}

func TestRetrieveConfigNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no configuration", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).RetrieveConfig(context.Background(), "")
	require.Error(t, err)
	assert.True(t, types.IsHTTPError(err))
	assert.Contains(t, err.Error(), "404")

	he, ok := types.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func writeUploadFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "watchlist.csv")
	require.NoError(t, os.WriteFile(path, []byte("sourceId,RTSsymbol\n676,F2:ES\n"), 0o644))
	return path
}

func TestSubmitConfig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "watchlist.csv", header.Filename)

		w.Header().Set("Date", "Wed, 18 Nov 2020 15:23:52 GMT")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"nbCreated": 1, "nbUpdated": 0, "nbFailed": 0, "nbDeactivated": 2,
			"created": ["676"], "updated": [], "failed": [], "deactivated": ["207", "208"]
		}`))
	}))
	defer srv.Close()

	rs, err := newTestClient(t, srv).SubmitConfig(context.Background(), writeUploadFile(t))
	require.NoError(t, err)

	// Submission time is the Date header as received, unparsed.
	assert.Equal(t, "Wed, 18 Nov 2020 15:23:52 GMT", rs.SubmissionTime)
	assert.Equal(t, 1, rs.Summary.NbCreated)
	assert.Equal(t, []string{"207", "208"}, rs.Summary.Deactivated)
}

func TestSubmitConfigServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).SubmitConfig(context.Background(), writeUploadFile(t))
	require.Error(t, err)
	assert.True(t, types.IsHTTPError(err))
	assert.Contains(t, err.Error(), "500")
}

func TestSubmitConfigMalformedSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Date", "Wed, 18 Nov 2020 15:23:52 GMT")
		w.Write([]byte(`{"nbCreated": 1}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).SubmitConfig(context.Background(), writeUploadFile(t))
	require.Error(t, err)
	assert.True(t, types.IsParseError(err))
}

func TestSubmitConfigMissingFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected when the file is unreadable")
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).SubmitConfig(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := NewClient(&ClientOptions{})
	require.Error(t, err)
}
