package entity

// FilterOp represents a filter operation type.
type FilterOp int

const (
	// Logical operators
	And FilterOp = iota
	Or
	Not

	// Comparison operators
	Eq       // ==
	Ne       // !=
	Gt       // >
	Gte      // >=
	Lt       // <
	Lte      // <=
	Contains // substring match
)

// Filter restricts which rows a store view returns. Filters are either
// simple comparisons or logical combinations of child filters.
type Filter struct {
	Op       FilterOp `yaml:"op,omitempty"`
	Field    string   `yaml:"field,omitempty"`
	Value    any      `yaml:"value,omitempty"`
	Children []Filter `yaml:"children,omitempty"`
}

// Sort is a sort directive for a store view.
type Sort struct {
	Field string `yaml:"field"`
	Desc  bool   `yaml:"desc,omitempty"`
}
