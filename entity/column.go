package entity

// ColType names the semantic type of a column's values.
type ColType string

const (
	Bool     ColType = "bool"
	Date     ColType = "date"
	DateTime ColType = "datetime"
	Number   ColType = "number"
	Text     ColType = "text"
)

// Column describes one column of an editable table.
//
// Index and Multi are optional ordering hints. Multi clusters a column into
// the grouped block that renders before ungrouped columns; Index places the
// column within its block. An absent hint means lowest priority for that
// hint, not zero.
type Column struct {
	Label    string  `yaml:"label,omitempty"`
	Type     ColType `yaml:"type,omitempty"`
	Index    *int    `yaml:"index,omitempty"`
	Multi    *int    `yaml:"multi,omitempty"`
	Width    int     `yaml:"width,omitempty"`
	Editable bool    `yaml:"editable,omitempty"`
	Checkbox bool    `yaml:"checkbox,omitempty"`
	Hidden   bool    `yaml:"hidden,omitempty"`
}

// Field is a column as reported by a store, in store order.
type Field struct {
	Name string
	Type ColType
}
