package watchlist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/datavault-io/watchlist/pkg/timeutil"
	"github.com/datavault-io/watchlist/pkg/types"
)

// WriteRetrievedConfig writes a retrieved configuration body, unmodified, to
// <dir>/watchlist_config@<timestamp>.csv and returns the file path.
func WriteRetrievedConfig(cfg types.RetrievedConfig, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("watchlist_config@%s.csv", cfg.Timestamp))
	if err := os.WriteFile(path, cfg.Body, 0o644); err != nil {
		return "", fmt.Errorf("failed to write retrieved configuration: %w", err)
	}
	return path, nil
}

// WriteRequestSummary writes the raw action summary, pretty-printed with a
// 2-space indent, to <dir>/request_summary_<timestamp>.json and returns the
// file path. The timestamp is the submission time in compact form.
func WriteRequestSummary(rs types.RequestSummary, dir string) (string, error) {
	ts, err := timeutil.Convert(rs.SubmissionTime, timeutil.CompactLayout)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(rs.Summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode request summary: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("request_summary_%s.json", ts))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write request summary: %w", err)
	}
	return path, nil
}
