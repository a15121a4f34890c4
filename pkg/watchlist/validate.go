// Package watchlist implements the local half of the Watchlist API contract:
// configuration file validation, the submission report, and artifact writers.
package watchlist

import (
	"bufio"
	"fmt"
	"os"
	"regexp"

	"github.com/datavault-io/watchlist/pkg/types"
)

var (
	// headerPattern is the exact header a configuration file must carry.
	headerPattern = regexp.MustCompile(`^sourceId,RTSsymbol$`)

	// rowPattern matches a 3-4 digit source ID and a symbol restricted to the
	// character set the ICE Consolidated Feed uses for instrument symbology.
	rowPattern = regexp.MustCompile(`^[0-9]{3,4},[A-Z0-9\\+;()!*\-.:/$@&_%#]+$`)
)

// ValidateHeader checks that the header of a configuration file is properly
// formatted.
func ValidateHeader(header string) error {
	if !headerPattern.MatchString(header) {
		return types.NewFormatError(0, "improperly formatted header")
	}
	return nil
}

// ValidateRow checks that a configuration file row is properly formatted.
// index is the 1-based position of the row within the file.
func ValidateRow(row string, index int) error {
	if !rowPattern.MatchString(row) {
		return types.NewFormatError(index, "improperly formatted row")
	}
	return nil
}

// ValidateFile checks that a configuration file is properly formatted. Rows
// are validated in order and the first violation is returned; rows are not
// checked against each other, so duplicate source IDs pass.
func ValidateFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open configuration file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for index := 0; scanner.Scan(); index++ {
		if index == 0 {
			if err := ValidateHeader(scanner.Text()); err != nil {
				return err
			}
			continue
		}
		if err := ValidateRow(scanner.Text(), index); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read configuration file: %w", err)
	}
	return nil
}
