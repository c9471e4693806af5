package cellier

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"cellier/style"
)

// RenderFooter renders position, status, and source name on one line.
func RenderFooter(current, total int, status, filename string, width int) string {

	left := fmt.Sprintf("%d/%d", current, total)
	if status != "" {
		left = left + "  " + status
	}
	right := filename

	// Calculate padding
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.MutedStyle.Render(left + strings.Repeat(" ", padding) + right)
}
