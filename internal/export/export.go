// Package export writes the current report text verbatim to a
// user-chosen destination. The content is never re-parsed: a .csv
// target receives the same bytes as a .txt target.
package export

import (
	"io"

	"csvscope/internal/errors"
)

// Write copies the report text to the destination.
func Write(w io.Writer, content string) error {
	if _, err := io.WriteString(w, content); err != nil {
		return errors.ExportFailed(err)
	}
	return nil
}
