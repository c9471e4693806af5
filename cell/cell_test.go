package cell

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"cellier/entity"
)

func textColumn(editable bool) entity.Column {
	return entity.Column{Type: entity.Text, Editable: editable}
}

func commitFrom(t *testing.T, cmd tea.Cmd) CommitMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a commit command")
	}
	msg, ok := cmd().(CommitMsg)
	if !ok {
		t.Fatalf("expected CommitMsg, got %T", cmd())
	}
	return msg
}

func TestCellStartsViewing(t *testing.T) {
	cl := New(0, "name", textColumn(true), entity.Value{Raw: "ada"}, entity.FormatConfig{}, "table")

	if cl.Mode() != Viewing {
		t.Error("new cell should be Viewing")
	}
	if cl.Render() != "ada" {
		t.Errorf("Render() = %q, want formatted value", cl.Render())
	}
}

func TestNonEditableStaysViewing(t *testing.T) {
	cl := New(0, "name", textColumn(false), entity.Value{Raw: "ada"}, entity.FormatConfig{}, "table")

	cl = cl.StartEdit()
	if cl.Mode() != Viewing {
		t.Error("non-editable cell must not enter Editing")
	}
}

func TestStartEditSeedsBuffer(t *testing.T) {
	col := entity.Column{Type: entity.Number, Editable: true}
	cfg := entity.FormatConfig{NumberFormat: "%.2f"}
	cl := New(2, "price", col, entity.Value{Raw: float64(12.5)}, cfg, "table")

	cl = cl.StartEdit()
	if cl.Mode() != Editing {
		t.Fatal("editable cell should enter Editing")
	}
	if cl.Buffer() != "12.50" {
		t.Errorf("Buffer() = %q, want the formatted value", cl.Buffer())
	}
}

func TestConfirmCommitsOnce(t *testing.T) {
	col := entity.Column{Type: entity.Number, Editable: true}
	cl := New(3, "price", col, entity.Value{Raw: float64(5)}, entity.FormatConfig{}, "table")

	cl = cl.StartEdit()
	cl.input = NewInput("7.25", 0)

	cl, cmd := cl.Confirm()
	msg := commitFrom(t, cmd)

	if msg.Row != 3 || msg.Column != "price" {
		t.Errorf("commit position = (%d, %s), want (3, price)", msg.Row, msg.Column)
	}
	if msg.Raw != "7.25" {
		t.Errorf("commit raw = %q, want the buffer text", msg.Raw)
	}
	if f, err := msg.Value.Float(); err != nil || f != 7.25 {
		t.Errorf("commit value = %v, want 7.25", msg.Value.Raw)
	}
	if msg.TimeZone != "" {
		t.Errorf("number commit carries zone %q", msg.TimeZone)
	}

	// optimistic: back to Viewing with the new value, not waiting on anyone
	if cl.Mode() != Viewing {
		t.Error("cell should leave Editing on successful confirm")
	}
	if cl.Render() != "7.25" {
		t.Errorf("Render() = %q after commit", cl.Render())
	}
}

func TestConfirmParseFailureStaysEditing(t *testing.T) {
	col := entity.Column{Type: entity.Number, Editable: true}
	cl := New(0, "price", col, entity.Value{Raw: float64(5)}, entity.FormatConfig{}, "table")

	cl = cl.StartEdit()
	cl.input = NewInput("not a number", 0)

	cl, cmd := cl.Confirm()
	if cmd != nil {
		t.Error("failed parse must not commit")
	}
	if cl.Mode() != Editing {
		t.Error("failed parse must stay in Editing")
	}
	if !cl.Invalid() {
		t.Error("failed parse should surface the invalid indicator")
	}
	if cl.Buffer() != "not a number" {
		t.Error("failed parse must keep the buffer")
	}
}

func TestCancelDiscards(t *testing.T) {
	cl := New(0, "name", textColumn(true), entity.Value{Raw: "ada"}, entity.FormatConfig{}, "table")

	cl = cl.StartEdit()
	cl.input = NewInput("changed", 0)

	cl = cl.Cancel()
	if cl.Mode() != Viewing {
		t.Error("cancel should return to Viewing")
	}
	if cl.Render() != "ada" {
		t.Errorf("Render() = %q, want the original value after cancel", cl.Render())
	}
}

func TestDateCommitCarriesZone(t *testing.T) {
	col := entity.Column{Type: entity.Date, Editable: true}
	cfg := entity.FormatConfig{TimeZone: "UTC", ForceTZ: true}
	val := entity.Value{Raw: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)}
	cl := New(1, "due", col, val, cfg, "table")

	cl = cl.StartEdit()
	cl.input = NewInput("2024-04-01", 0)

	_, cmd := cl.Confirm()
	msg := commitFrom(t, cmd)

	if msg.TimeZone != "UTC" {
		t.Errorf("date commit zone = %q, want UTC", msg.TimeZone)
	}
	pt, err := msg.Value.Time()
	if err != nil || !pt.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date commit value = %v", msg.Value.Raw)
	}
}

func TestBoolToggleIsTheCommit(t *testing.T) {
	// no edit affordance needed: not editable, still interactive
	col := entity.Column{Type: entity.Bool}
	cl := New(4, "active", col, entity.Value{Raw: false}, entity.FormatConfig{}, "table")

	cl, cmd := cl.Toggle()
	msg := commitFrom(t, cmd)

	if b, err := msg.Value.Bool(); err != nil || !b {
		t.Errorf("toggle commit value = %v, want true", msg.Value.Raw)
	}
	if msg.Row != 4 || msg.Column != "active" {
		t.Errorf("toggle commit position = (%d, %s)", msg.Row, msg.Column)
	}
	if msg.Raw != "true" {
		t.Errorf("toggle commit raw = %q", msg.Raw)
	}
	if cl.Mode() != Viewing {
		t.Error("toggle bypasses Editing entirely")
	}

	// flips back and commits again, one message per flip
	cl, cmd = cl.Toggle()
	msg = commitFrom(t, cmd)
	if b, _ := msg.Value.Bool(); b {
		t.Error("second toggle should commit false")
	}
	_ = cl
}

func TestBoolEditAffordance(t *testing.T) {
	col := entity.Column{Type: entity.Bool, Editable: true}
	cl := New(0, "active", col, entity.Value{Raw: true}, entity.FormatConfig{}, "table")

	cl = cl.StartEdit()
	if cl.Mode() != Editing {
		t.Error("editable bool cell should enter Editing from the affordance")
	}
	if cl.Render() != "‹[x]›" {
		t.Errorf("Render() = %q, want the same toggle control", cl.Render())
	}
}

func TestBoolChrome(t *testing.T) {
	tests := []struct {
		name     string
		checkbox bool
		checked  bool
		expected string
	}{
		{name: "switch chrome", checkbox: false, checked: true, expected: "‹[x]›"},
		{name: "switch chrome unchecked", checkbox: false, checked: false, expected: "‹[ ]›"},
		{name: "checkbox chrome", checkbox: true, checked: true, expected: "[x]"},
		{name: "checkbox chrome unchecked", checkbox: true, checked: false, expected: "[ ]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := entity.Column{Type: entity.Bool, Checkbox: tt.checkbox}
			cl := New(0, "active", col, entity.Value{Raw: tt.checked}, entity.FormatConfig{}, "table")
			if cl.Render() != tt.expected {
				t.Errorf("Render() = %q, want %q", cl.Render(), tt.expected)
			}
		})
	}
}

func TestClassNames(t *testing.T) {
	text := New(0, "Due Date", entity.Column{Type: entity.Text}, entity.Value{}, entity.FormatConfig{}, "cellier")
	if text.Class() != "cellier-due-date" {
		t.Errorf("Class() = %q, want cellier-due-date", text.Class())
	}

	boolCell := New(0, "active", entity.Column{Type: entity.Bool}, entity.Value{Raw: true}, entity.FormatConfig{}, "cellier")
	if boolCell.Class() != "cellier-bool" {
		t.Errorf("Class() = %q, want the type discriminator for bool", boolCell.Class())
	}
}
