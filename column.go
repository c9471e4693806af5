package cellier

import (
	"cmp"
	"math"
	"slices"
	"sort"

	"cellier/entity"
)

// OrderColumns sorts column keys by their ordering hints: multi-bearing
// columns cluster first ordered by multi then index, index-only columns
// follow ordered by index, and hintless columns keep their original
// relative order at the end. Keys missing from byKey count as hintless.
func OrderColumns(keys []string, byKey map[string]entity.Column) []string {

	ordered := slices.Clone(keys)
	sort.SliceStable(ordered, func(i, j int) bool {
		return CompareColumns(byKey[ordered[i]], byKey[ordered[j]]) < 0
	})

	return ordered
}

// CompareColumns is the composite ordering key: definedness of multi
// descending, multi ascending, index ascending. Ties return zero so a
// stable sort preserves input order.
func CompareColumns(a, b entity.Column) int {

	switch {
	case a.Multi != nil && b.Multi == nil:
		return -1
	case a.Multi == nil && b.Multi != nil:
		return 1
	case a.Multi != nil && *a.Multi != *b.Multi:
		return cmp.Compare(*a.Multi, *b.Multi)
	}

	return cmp.Compare(hint(a.Index), hint(b.Index))
}

// hint treats an absent hint as lowest priority, never an error
func hint(h *int) int {
	if h == nil {
		return math.MaxInt
	}
	return *h
}
