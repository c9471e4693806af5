package cell

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

var cursorStyle = lipgloss.NewStyle().Reverse(true)

// Input is the text buffer of a cell being edited.
type Input struct {
	value     string
	cursor    int
	maxLength int
}

func NewInput(value string, maxLength int) Input {
	if maxLength <= 0 {
		maxLength = 100 // Default max length
	}
	return Input{
		value:     value,
		cursor:    len(value),
		maxLength: maxLength,
	}
}

func (in Input) Update(msg tea.KeyPressMsg) Input {
	switch msg.String() {
	case "backspace":
		if in.cursor > 0 {
			in.value = in.value[:in.cursor-1] + in.value[in.cursor:]
			in.cursor--
		}
	case "delete":
		if in.cursor < len(in.value) {
			in.value = in.value[:in.cursor] + in.value[in.cursor+1:]
		}
	case "left":
		if in.cursor > 0 {
			in.cursor--
		}
	case "right":
		if in.cursor < len(in.value) {
			in.cursor++
		}
	case "home", "ctrl+a":
		in.cursor = 0
	case "end", "ctrl+e":
		in.cursor = len(in.value)
	default:
		// Insert character if it's a single rune and under max length
		if len(msg.String()) == 1 && len(in.value) < in.maxLength {
			in.value = in.value[:in.cursor] + msg.String() + in.value[in.cursor:]
			in.cursor++
		}
	}
	return in
}

func (in Input) Value() string {
	return in.value
}

func (in Input) Cursor() int {
	return in.cursor
}

func (in Input) Render() string {
	if in.cursor >= len(in.value) {
		return in.value + cursorStyle.Render(" ")
	}
	return in.value[:in.cursor] + cursorStyle.Render(string(in.value[in.cursor])) + in.value[in.cursor+1:]
}
