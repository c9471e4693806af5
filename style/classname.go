package style

import (
	"regexp"
	"strings"

	"charm.land/lipgloss/v2"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// DeriveClassName turns a column label into a class suffix usable for
// per-column styling. The label is lower-cased, each run of characters that
// are not ASCII letters or digits collapses to a single hyphen, and one
// hyphen is prepended. Runs at the boundaries never double up with the
// prefix. A blank label yields no class.
func DeriveClassName(label string) string {

	if label == "" {
		return ""
	}

	collapsed := nonAlnum.ReplaceAllString(strings.ToLower(label), "-")
	return "-" + strings.TrimPrefix(collapsed, "-")
}

// Classes maps a class name to the style rendered for cells bearing it,
// letting per-column and per-type appearance be configured outside the
// cell itself.
type Classes map[string]lipgloss.Style

// For looks up the style for a class name, falling back to no styling.
func (cls Classes) For(name string) lipgloss.Style {
	if st, ok := cls[name]; ok {
		return st
	}
	return UnStyle
}
