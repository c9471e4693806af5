package cellier

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/pkg/errors"

	"cellier/cell"
	"cellier/entity"
	"cellier/format"
	"cellier/style"
)

// Todo: handle columns overflow
// Todo: search

const (
	headerHeight    = 2
	defaultColWidth = 12
)

// TablePanel handles the grid: paging, row and column selection, and the
// cell currently owning input.
type TablePanel struct {
	selected int // Absolute position (0 to total-1) of selected row
	selCol   int // Position of selected column among visible columns
	offset   int // Offset of page shown
	total    int // Total rows after filtering

	width  int
	height int

	cols    []viewCol
	rows    []entity.Row
	current cell.Cell

	cfg        entity.FormatConfig
	baseClass  string
	classes    style.Classes
	layoutCols map[string]entity.Column
	table      *table.Table
}

// viewCol is one visible column resolved against store fields
type viewCol struct {
	key      string
	fieldIdx int
	width    int
	column   entity.Column
	class    string
	render   func(entity.Value) string
}

func NewTablePanel(layout *Layout, fields []entity.Field, count int) TablePanel {

	grid := table.New()
	style.StyleTable(grid)

	pnl := TablePanel{
		total:      count,
		cfg:        layout.Format,
		baseClass:  layout.BaseClass,
		classes:    style.Classes{},
		layoutCols: layout.Columns,
		table:      grid,
	}

	pnl = pnl.setColumns(fields)

	return pnl
}

// SetClasses installs the class to style mapping used for per-column
// and per-type appearance.
func (pnl TablePanel) SetClasses(classes style.Classes) TablePanel {
	pnl.classes = classes
	return pnl
}

// Editing reports whether the selected cell owns keyboard input.
func (pnl TablePanel) Editing() bool {
	return pnl.current.Mode() == cell.Editing
}

// RowId returns the store id for an absolute row position.
func (pnl TablePanel) RowId(row int) (id string, err error) {

	line := row - pnl.offset
	if line < 0 || line >= len(pnl.rows) {
		err = errors.Errorf("row %d is not on the loaded page", row)
		return
	}

	id = pnl.rows[line].Id()
	return
}

// PageSize returns the number of rows that fit on panel
func (pnl TablePanel) PageSize() int {
	return pnl.height - headerHeight
}

func (pnl TablePanel) Update(msg tea.Msg) (TablePanel, tea.Cmd) {
	switch msg := msg.(type) {

	case pageMsg:
		editing := pnl.Editing()
		pnl.rows = msg.rows
		pnl.total = msg.count
		if pnl.selected >= pnl.total && pnl.total > 0 {
			pnl.selected = pnl.total - 1
		}

		// an unsaved buffer survives a refresh while its row+column
		// identity is still on the page
		if editing && pnl.current.Row() >= pnl.offset && pnl.current.Row() < pnl.offset+len(pnl.rows) {
			return pnl, nil
		}
		return pnl.syncCurrent(), nil

	case panelSizeMsg:
		pnl.width = msg.width
		pnl.height = msg.height

		pageSize := pnl.PageSize()
		if pageSize > 0 {
			return pnl, func() tea.Msg {
				return getPageMsg{
					offset: pnl.offset,
					size:   pageSize,
				}
			}
		}

	case tea.KeyPressMsg:

		// an editing cell owns every key
		if pnl.Editing() {
			var cmd tea.Cmd
			pnl.current, cmd = pnl.current.Update(msg)
			return pnl, cmd
		}

		switch msg.String() {

		case "enter", " ", "t":
			// edit-start, or toggle for booleans
			var cmd tea.Cmd
			pnl.current, cmd = pnl.current.Update(msg)
			return pnl, cmd

		case "up", "k":
			if pnl.selected > 0 {
				pnl.selected--
			}

		case "down", "j":
			if pnl.selected < pnl.total-1 {
				pnl.selected++
			}

		case "left", "h":
			if pnl.selCol > 0 {
				pnl.selCol--
			}

		case "right", "l":
			if pnl.selCol < len(pnl.cols)-1 {
				pnl.selCol++
			}

		case "pgup", "ctrl+u":
			pnl.selected -= pnl.PageSize()
			if pnl.selected < 0 {
				pnl.selected = 0
			}

		case "pgdown", "ctrl+d":
			pnl.selected += pnl.PageSize()
			if pnl.selected >= pnl.total {
				pnl.selected = pnl.total - 1
			}

		case "g":
			pnl.selected = 0

		case "G":
			pnl.selected = pnl.total - 1
		}

		// Adjust offset to keep selection visible
		oldOffset := pnl.offset
		pageSize := pnl.PageSize()
		if pnl.selected < pnl.offset {
			pnl.offset = pnl.selected
		} else if pageSize > 0 && pnl.selected >= pnl.offset+pageSize {
			pnl.offset = pnl.selected - pageSize + 1
		}

		pnl = pnl.syncCurrent()

		// If we've scrolled to a different page, request new data
		if pnl.offset != oldOffset {
			return pnl, func() tea.Msg {
				return getPageMsg{
					offset: pnl.offset,
					size:   pageSize,
				}
			}
		}
	}

	return pnl, nil
}

// Render renders the grid with the active cell in place
func (pnl TablePanel) Render() string {

	pnl.table.StyleFunc(style.CellStyler(pnl.selectedLine(), pnl.selCol))

	pnl.table.ClearRows()
	for i, row := range pnl.rows {
		out := make([]string, len(pnl.cols))
		for j, vc := range pnl.cols {

			if i == pnl.selectedLine() && j == pnl.selCol {
				out[j] = pnl.styled(vc.class, pnl.current.Render())
				continue
			}

			formatted := truncate(vc.render(row.At(vc.fieldIdx)), vc.width)
			out[j] = pnl.styled(vc.class, formatted)
		}
		pnl.table.Row(out...)
	}

	return pnl.table.Render()
}

// Selected returns the absolute position of the selected row
func (pnl TablePanel) Selected() int {
	return pnl.selected
}

// Total returns the row count for the view
func (pnl TablePanel) Total() int {
	return pnl.total
}

// Invalid reports an edit buffer that failed its last parse.
func (pnl TablePanel) Invalid() bool {
	return pnl.current.Invalid()
}

// unexported

func (pnl TablePanel) selectedLine() int {
	return pnl.selected - pnl.offset
}

// syncCurrent rebuilds the active cell from the selection. Any in-progress
// edit state is dropped, callers guard the identity-preserving case.
func (pnl TablePanel) syncCurrent() TablePanel {

	line := pnl.selectedLine()
	if line < 0 || line >= len(pnl.rows) || pnl.selCol >= len(pnl.cols) {
		pnl.current = cell.Cell{}
		return pnl
	}

	vc := pnl.cols[pnl.selCol]
	val := pnl.rows[line].At(vc.fieldIdx)
	pnl.current = cell.New(pnl.selected, vc.key, vc.column, val, pnl.cfg, pnl.baseClass)

	return pnl
}

func (pnl TablePanel) setColumns(fields []entity.Field) TablePanel {

	byKey := map[string]entity.Column{}
	idxByName := map[string]int{}
	keys := make([]string, 0, len(fields))

	for i, field := range fields {
		col := pnl.layoutCols[field.Name]
		if col.Type == "" {
			col.Type = field.Type
		}
		if col.Type == "" {
			col.Type = entity.Text
		}
		if col.Width == 0 {
			col.Width = defaultColWidth
		}

		byKey[field.Name] = col
		idxByName[field.Name] = i
		keys = append(keys, field.Name)
	}

	cols := []viewCol{}
	for _, key := range OrderColumns(keys, byKey) {
		col := byKey[key]
		if col.Hidden {
			continue
		}

		discriminator := key
		if col.Type == entity.Bool {
			discriminator = string(entity.Bool)
		}

		cols = append(cols, viewCol{
			key:      key,
			fieldIdx: idxByName[key],
			width:    col.Width,
			column:   col,
			class:    pnl.baseClass + style.DeriveClassName(discriminator),
			render:   makeRenderer(col, pnl.cfg),
		})
	}

	var headers []string
	for _, vc := range cols {
		label := vc.column.Label
		if label == "" {
			label = vc.key
		}
		headers = append(headers, fmt.Sprintf("%-*s", vc.width+1, label))
	}

	pnl.table.Headers(headers...)
	pnl.cols = cols
	pnl.rows = nil // rows we had no longer match cols

	return pnl.syncCurrent()
}

func (pnl TablePanel) styled(class, in string) string {
	if st, ok := pnl.classes[class]; ok {
		return st.Render(in)
	}
	return in
}

// help

func makeRenderer(col entity.Column, cfg entity.FormatConfig) func(entity.Value) string {

	if col.Type == entity.Bool {
		checkbox := col.Checkbox
		return func(val entity.Value) string {
			checked, _ := val.Bool()
			return cell.NewToggle(checked, checkbox).Render()
		}
	}

	fmtr := format.New(col.Type, cfg)
	return fmtr.Format
}

func truncate(in string, width int) string {

	if len(in) <= width {
		return in
	}

	truncated := in[:width-1]
	ellipsis := style.MutedStyle.Render("…")
	return truncated + ellipsis
}
