// Package cell holds the edit state machine for a single table cell.
//
// A cell is Viewing or Editing. Editing is reachable only for editable,
// non-boolean cells; boolean cells render an always-interactive toggle
// whose flip is itself the commit. Commits surface as a CommitMsg from the
// returned command, and a cell leaves edit mode on confirm without waiting
// for whatever consumes the message.
package cell

import (
	"strconv"

	tea "charm.land/bubbletea/v2"

	"cellier/entity"
	"cellier/format"
	"cellier/style"
)

// Mode distinguishes a cell at rest from one being edited.
type Mode int

const (
	Viewing Mode = iota
	Editing
)

// Cell is the transient edit state of one cell, owned by exactly one
// rendering instance. The value and config it is built from stay immutable;
// only mode, buffer, and the invalid flag change.
type Cell struct {
	mode    Mode
	input   Input
	toggle  Toggle
	invalid bool

	value    entity.Value
	row      int
	column   string
	typ      entity.ColType
	fmtr     format.Formatter
	tz       string
	editable bool
	class    string
}

// New builds the cell for one (row, column) position. Editable comes from
// the column descriptor; when false the cell stays in Viewing for its whole
// life, except that boolean cells keep their toggle.
func New(row int, column string, col entity.Column, val entity.Value, cfg entity.FormatConfig, baseClass string) Cell {

	// booleans style by type, everything else by column key
	discriminator := column
	if col.Type == entity.Bool {
		discriminator = string(entity.Bool)
	}

	cl := Cell{
		value:    val,
		row:      row,
		column:   column,
		typ:      col.Type,
		fmtr:     format.New(col.Type, cfg),
		editable: col.Editable,
		class:    baseClass + style.DeriveClassName(discriminator),
	}

	switch col.Type {
	case entity.Bool:
		checked, _ := val.Bool()
		cl.toggle = NewToggle(checked, col.Checkbox)
	case entity.Date, entity.DateTime:
		cl.tz = cfg.TimeZone
	}

	return cl
}

func (cl Cell) Mode() Mode {
	return cl.mode
}

func (cl Cell) Row() int {
	return cl.row
}

func (cl Cell) Column() string {
	return cl.column
}

// Class scopes the cell for external styling, the table's base class plus
// the derived per-column (or per-type) suffix.
func (cl Cell) Class() string {
	return cl.class
}

func (cl Cell) Value() entity.Value {
	return cl.value
}

// Buffer returns the in-progress edit text.
func (cl Cell) Buffer() string {
	return cl.input.Value()
}

// Invalid reports a buffer that failed to parse on the last confirm.
func (cl Cell) Invalid() bool {
	return cl.invalid
}

// StartEdit enters edit mode, seeding the buffer with the formatted value.
// No-op for non-editable cells and for booleans' missing text buffer.
func (cl Cell) StartEdit() Cell {

	if !cl.editable || cl.mode == Editing {
		return cl
	}

	if cl.typ != entity.Bool {
		cl.input = NewInput(cl.fmtr.Format(cl.value), 0)
	}
	cl.mode = Editing
	cl.invalid = false

	return cl
}

// Confirm parses the buffer. On success the cell reports the edit and
// returns to Viewing without waiting on the consumer; on failure it stays
// in Editing with the invalid indicator set and reports nothing.
func (cl Cell) Confirm() (Cell, tea.Cmd) {

	if cl.mode != Editing {
		return cl, nil
	}

	if cl.typ == entity.Bool {
		// toggles committed as they flipped, nothing left to parse
		cl.mode = Viewing
		return cl, nil
	}

	raw := cl.input.Value()
	val, err := cl.fmtr.Parse(raw)
	if err != nil {
		cl.invalid = true
		return cl, nil
	}

	cl.value = val
	cl.mode = Viewing
	cl.invalid = false

	return cl, cl.commitCmd(val, raw)
}

// Cancel discards the buffer and returns to Viewing. Nothing is reported.
func (cl Cell) Cancel() Cell {
	cl.mode = Viewing
	cl.invalid = false
	return cl
}

// Toggle flips a boolean cell and reports the flip immediately; there is
// no buffer and no parse step. No-op for other types.
func (cl Cell) Toggle() (Cell, tea.Cmd) {

	if cl.typ != entity.Bool {
		return cl, nil
	}

	cl.toggle = cl.toggle.Flip()
	checked := cl.toggle.Checked()
	cl.value = entity.Value{Raw: checked}

	return cl, cl.commitCmd(cl.value, strconv.FormatBool(checked))
}

// Update maps key events onto the explicit transitions.
func (cl Cell) Update(msg tea.Msg) (Cell, tea.Cmd) {

	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return cl, nil
	}

	if cl.typ == entity.Bool {
		switch key.String() {
		case " ", "t":
			return cl.Toggle()
		case "enter":
			if cl.mode == Editing {
				return cl.Confirm()
			}
			return cl.StartEdit(), nil
		case "esc":
			return cl.Cancel(), nil
		}
		return cl, nil
	}

	switch key.String() {
	case "enter":
		if cl.mode == Editing {
			return cl.Confirm()
		}
		return cl.StartEdit(), nil
	case "esc":
		return cl.Cancel(), nil
	default:
		if cl.mode == Editing {
			cl.input = cl.input.Update(key)
			cl.invalid = false
		}
	}

	return cl, nil
}

// Render returns the cell's visual for the current mode.
func (cl Cell) Render() string {

	switch {
	case cl.typ == entity.Bool:
		return cl.toggle.Render()
	case cl.fmtr == nil:
		// zero cell, nothing to show
		return cl.value.String()
	case cl.mode == Editing:
		if cl.invalid {
			return style.InvalidStyle.Render(cl.input.Render())
		}
		return cl.input.Render()
	default:
		return cl.fmtr.Format(cl.value)
	}
}

// unexported

func (cl Cell) commitCmd(val entity.Value, raw string) tea.Cmd {

	msg := CommitMsg{
		Value:    val,
		Row:      cl.row,
		Column:   cl.column,
		Raw:      raw,
		TimeZone: cl.tz,
	}

	return func() tea.Msg {
		return msg
	}
}
