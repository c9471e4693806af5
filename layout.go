package cellier

import (
	"cellier/entity"
	"cellier/util"
)

const (
	layoutFile       = "layout.yaml"
	defaultBaseClass = "cellier"
)

// Layout is the per-table configuration: column descriptors keyed by field
// name, format config, an optional filter, and the base class that scopes
// per-column styling.
type Layout struct {
	BaseClass string                   `yaml:"baseclass,omitempty"`
	Format    entity.FormatConfig      `yaml:"format,omitempty"`
	Columns   map[string]entity.Column `yaml:"columns,omitempty"`
	Filter    entity.Filter            `yaml:"filter,omitempty"`
}

// LoadLayout reads a layout from yaml.
func LoadLayout(path string) (layout *Layout, err error) {

	layout = &Layout{}
	err = util.LoadConfig(layout, path)
	if err != nil {
		return
	}

	if layout.BaseClass == "" {
		layout.BaseClass = defaultBaseClass
	}
	return
}

// DefaultLayout covers the no-layout-file case: every store field shown
// as-is, no hints, nothing editable.
func DefaultLayout() *Layout {
	return &Layout{
		BaseClass: defaultBaseClass,
		Columns:   map[string]entity.Column{},
	}
}
