package cell

// Toggle is the boolean cell control. With checkbox chrome it renders as a
// bare checkbox; otherwise the checkbox is wrapped in switch chrome.
type Toggle struct {
	checked  bool
	checkbox bool
}

func NewToggle(checked, checkbox bool) Toggle {
	return Toggle{
		checked:  checked,
		checkbox: checkbox,
	}
}

func (tg Toggle) Flip() Toggle {
	tg.checked = !tg.checked
	return tg
}

func (tg Toggle) Checked() bool {
	return tg.checked
}

func (tg Toggle) Render() string {
	box := "[ ]"
	if tg.checked {
		box = "[x]"
	}
	if tg.checkbox {
		return box
	}
	return "‹" + box + "›"
}
