// Package session owns the application state: the single loaded table
// and the report text currently shown in the output pane. It replaces
// the process-wide dataset global with an explicit object injected
// into each handler.
package session

import (
	"csvscope/domain/table"
	"csvscope/internal"
	"csvscope/internal/errors"
)

// Session holds at most one table at a time. It is owned by the single
// interface thread; handlers run to completion, so no locking is
// needed.
type Session struct {
	logger *internal.Logger
	table  *table.Table
	report string
}

// New creates an empty session.
func New() *Session {
	return &Session{logger: internal.DefaultLogger}
}

// HasTable reports whether a dataset is loaded.
func (s *Session) HasTable() bool {
	return s.table != nil
}

// Table returns the current dataset, or a NO_DATASET error when none
// has been loaded yet.
func (s *Session) Table() (*table.Table, error) {
	if s.table == nil {
		return nil, errors.NoDataset()
	}
	return s.table, nil
}

// Replace swaps in a freshly loaded table, discarding the previous
// contents wholesale.
func (s *Session) Replace(t *table.Table) {
	if s.table != nil {
		s.logger.Debug("[Session] replacing dataset %s with %s", s.table.ID, t.ID)
	}
	s.table = t
}

// Report returns the report text currently shown.
func (s *Session) Report() string {
	return s.report
}

// SetReport overwrites the report text; every view action fully
// rewrites the pane.
func (s *Session) SetReport(text string) {
	s.report = text
}
