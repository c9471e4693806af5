package cellier

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"cellier/cell"
	"cellier/entity"
)

const (
	footerHeight = 2
)

// Model is the bubbletea model for the editable table TUI.
type Model struct {
	Store  Store
	Layout *Layout
	Panel  TablePanel

	logger      entity.Logger
	ctx         context.Context
	errorString string

	Width  int
	Height int
}

// NewModel creates a new bt model.
func NewModel(ctx context.Context, store Store, layout *Layout, lgr entity.Logger) (model Model, err error) {

	// Apply filter from layout (SetView handles the zero filter)
	err = store.SetView(layout.Filter, nil)
	if err != nil {
		return
	}

	fields, count, err := store.GetView()
	if err != nil {
		return
	}

	model = Model{
		Store:  store,
		Layout: layout,
		Panel:  NewTablePanel(layout, fields, count),
		logger: lgr,
		ctx:    ctx,
	}

	return
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case getPageMsg:
		return m, m.getPage(msg.offset, msg.size)

	case cell.CommitMsg:
		return m, m.commitEdit(msg)

	case errorMsg:
		m.logger.Error(m.ctx, "error msg", msg.err)
		m.errorString = msg.err.Error()
		return m, nil

	case tea.KeyPressMsg:
		if m.errorString != "" {
			m.errorString = ""
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// global keys stay out of the way while a cell owns input
		if !m.Panel.Editing() {
			switch msg.String() {
			case "q", "esc":
				return m, tea.Quit

			case "r":
				// Reload columns and filter from layout
				return m.reloadLayout()
			}
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		var cmd tea.Cmd
		m.Panel, cmd = m.Panel.Update(panelSizeMsg{
			width:  msg.Width,
			height: msg.Height - footerHeight,
		})
		return m, cmd
	}

	var cmd tea.Cmd
	m.Panel, cmd = m.Panel.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	screenLayer := lipgloss.NewLayer("screen", m.Panel.Render())

	status := m.errorString
	if status == "" && m.Panel.Invalid() {
		status = "unparsable, esc to discard"
	} else if status == "" && m.Panel.Editing() {
		status = "editing, enter to save"
	}

	current := m.Panel.Selected() + 1
	footerContent := RenderFooter(current, m.Panel.Total(), status, m.Store.Name(), m.Width)
	footerLayer := lipgloss.NewLayer("footer", footerContent).Y(m.Height - footerHeight)

	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(screenLayer)
	canvas.Compose(footerLayer)

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}
