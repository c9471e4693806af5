package cellier

import (
	"slices"
	"testing"

	"cellier/entity"
)

func ip(i int) *int {
	return &i
}

func TestOrderColumns(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		byKey    map[string]entity.Column
		expected []string
	}{
		{
			name: "index only",
			keys: []string{"col2", "col0", "col1"},
			byKey: map[string]entity.Column{
				"col0": {Index: ip(0)},
				"col1": {Index: ip(1)},
				"col2": {Index: ip(2)},
			},
			expected: []string{"col0", "col1", "col2"},
		},
		{
			name: "multi only",
			keys: []string{"col1", "col2", "col0"},
			byKey: map[string]entity.Column{
				"col0": {Multi: ip(0)},
				"col1": {Multi: ip(1)},
				"col2": {Multi: ip(2)},
			},
			expected: []string{"col0", "col1", "col2"},
		},
		{
			name: "multi clusters before index",
			keys: []string{"col0", "col1", "col2", "col3"},
			byKey: map[string]entity.Column{
				"col0": {Index: ip(0)},
				"col1": {Index: ip(1)},
				"col2": {Multi: ip(1), Index: ip(2)},
				"col3": {Multi: ip(0), Index: ip(3)},
			},
			expected: []string{"col3", "col2", "col0", "col1"},
		},
		{
			name: "multi primary index secondary",
			keys: []string{"a", "b", "c"},
			byKey: map[string]entity.Column{
				"a": {Multi: ip(1), Index: ip(0)},
				"b": {Multi: ip(0), Index: ip(5)},
				"c": {Multi: ip(0), Index: ip(2)},
			},
			expected: []string{"c", "b", "a"},
		},
		{
			name: "hintless keep original order at the end",
			keys: []string{"x", "y", "z", "w"},
			byKey: map[string]entity.Column{
				"z": {Index: ip(0)},
			},
			expected: []string{"z", "x", "y", "w"},
		},
		{
			name:     "no descriptors at all",
			keys:     []string{"one", "two", "three"},
			byKey:    map[string]entity.Column{},
			expected: []string{"one", "two", "three"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := OrderColumns(tt.keys, tt.byKey)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("OrderColumns() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestOrderColumnsLeavesInputAlone(t *testing.T) {
	keys := []string{"b", "a"}
	byKey := map[string]entity.Column{
		"a": {Index: ip(0)},
		"b": {Index: ip(1)},
	}

	_ = OrderColumns(keys, byKey)
	if !slices.Equal(keys, []string{"b", "a"}) {
		t.Error("OrderColumns() must not mutate its input")
	}
}

func TestCompareColumnsTiesAreZero(t *testing.T) {
	a := entity.Column{Multi: ip(1), Index: ip(2)}
	b := entity.Column{Multi: ip(1), Index: ip(2)}

	if CompareColumns(a, b) != 0 {
		t.Error("equal hints should compare equal for stable sorting")
	}
	if CompareColumns(entity.Column{}, entity.Column{}) != 0 {
		t.Error("hintless columns should compare equal")
	}
}
