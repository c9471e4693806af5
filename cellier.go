// Package cellier renders tabular data in a terminal and lets a user edit
// individual cells in place. Column order, per-type formatting, and the
// edit/commit protocol live here; fetching and persisting rows belong to a
// Store implementation.
package cellier

import (
	"cellier/entity"
)

// Store specifies a backing datastore for editable tabular data.
type Store interface {
	// Name returns the name of the data source
	Name() string
	// Load a file into the store
	Load(path string) (err error)
	// SetView applies Filter and Sort(s) to subsequent reads
	SetView(filter entity.Filter, sorts []entity.Sort) (err error)
	// GetView returns fields and row count for the current view
	GetView() (fields []entity.Field, count int, err error)
	// GetPage of rows; each row carries its id at position zero
	GetPage(offset, size int) (rows []entity.Row, err error)
	// UpdateCell writes one committed edit
	UpdateCell(id, field string, value entity.Value) (err error)
}
