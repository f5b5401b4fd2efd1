package ports

import (
	"godrift/domain/dataset"
)

// TableReader loads one tabular source into a typed column table.
type TableReader interface {
	Read() (*dataset.Table, error)
}

// ReaderFactory builds a reader for a dataset locator. The factory is what
// the service holds, so tests can substitute in-memory tables without
// touching the filesystem.
type ReaderFactory func(path string) TableReader
