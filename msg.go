package cellier

import "cellier/entity"

// pageMsg contains a loaded page of rows
type pageMsg struct {
	rows  []entity.Row
	count int
}

// getPageMsg signals to load a page of rows
type getPageMsg struct {
	offset int
	size   int
}

// panelSizeMsg signals panel size computed by the model's layout pass
type panelSizeMsg struct {
	width  int
	height int
}

// errorMsg contains an error
type errorMsg struct {
	err error
}
