package cellier

import (
	tea "charm.land/bubbletea/v2"

	"cellier/cell"
)

// getPage gets a page of rows from the store
func (m Model) getPage(offset, size int) tea.Cmd {

	return func() tea.Msg {

		_, count, err := m.Store.GetView()
		if err != nil {
			return errorMsg{err: err}
		}

		rows, err := m.Store.GetPage(offset, size)
		if err != nil {
			return errorMsg{err: err}
		}

		return pageMsg{
			rows:  rows,
			count: count,
		}
	}
}

// commitEdit hands a committed cell edit to the store and refreshes the
// page. The cell has already left edit mode; a store failure surfaces via
// the footer rather than reopening the editor.
func (m Model) commitEdit(msg cell.CommitMsg) tea.Cmd {

	offset := m.Panel.offset
	size := m.Panel.PageSize()

	return func() tea.Msg {

		id, err := m.Panel.RowId(msg.Row)
		if err != nil {
			return errorMsg{err: err}
		}

		err = m.Store.UpdateCell(id, msg.Column, msg.Value)
		if err != nil {
			return errorMsg{err: err}
		}

		m.logger.Info(m.ctx, "cell edited",
			"row", msg.Row,
			"column", msg.Column,
			"raw", msg.Raw,
			"tz", msg.TimeZone,
		)

		return getPageMsg{offset: offset, size: size}
	}
}

// reloadLayout loads layout from file and reapplies columns and filter
func (m Model) reloadLayout() (Model, tea.Cmd) {

	layout, err := LoadLayout(layoutFile)
	if err != nil {
		return m, errorCmd(err)
	}

	err = m.Store.SetView(layout.Filter, nil)
	if err != nil {
		return m, errorCmd(err)
	}

	fields, count, err := m.Store.GetView()
	if err != nil {
		return m, errorCmd(err)
	}

	m.Layout = layout
	m.Panel = NewTablePanel(layout, fields, count).SetClasses(m.Panel.classes)
	m.Panel.width = m.Width
	m.Panel.height = m.Height - footerHeight

	return m, func() tea.Msg {
		return getPageMsg{offset: 0, size: m.Panel.PageSize()}
	}
}

func errorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return errorMsg{err: err}
	}
}
