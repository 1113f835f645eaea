// Package ports defines the interfaces the ui shell depends on,
// keeping handlers testable with supplied implementations.
package ports

import (
	"csvscope/domain/table"
)

// TableReader parses a tabular file into an in-memory table.
type TableReader interface {
	ReadTable(path string) (*table.Table, error)
}
