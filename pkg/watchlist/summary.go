package watchlist

import (
	"fmt"
	"strings"

	"github.com/datavault-io/watchlist/pkg/types"
)

// Stringify renders a submission summary in human-readable form: the
// submission time, the four action counts, then one line of affected source
// IDs per nonzero category, in created/updated/failed/deactivated order.
func Stringify(rs types.RequestSummary) string {
	s := rs.Summary

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", rs.SubmissionTime)
	b.WriteString("Actions performed as a result of the request:\n")
	fmt.Fprintf(&b, "  - %d new sources have been activated\n", s.NbCreated)
	fmt.Fprintf(&b, "  - %d existing sources have been updated\n", s.NbUpdated)
	fmt.Fprintf(&b, "  - %d sources have failed\n", s.NbFailed)
	fmt.Fprintf(&b, "  - %d existing sources have been deactivated\n\n", s.NbDeactivated)

	if s.NbCreated != 0 {
		fmt.Fprintf(&b, "The following sources have been activated: %s\n", strings.Join(s.Created, ", "))
	}
	if s.NbUpdated != 0 {
		fmt.Fprintf(&b, "The following sources have been updated: %s\n", strings.Join(s.Updated, ", "))
	}
	if s.NbFailed != 0 {
		fmt.Fprintf(&b, "The following sources have failed: %s\n", strings.Join(s.Failed, ", "))
	}
	if s.NbDeactivated != 0 {
		fmt.Fprintf(&b, "The following sources have been deactivated: %s\n", strings.Join(s.Deactivated, ", "))
	}
	return b.String()
}
