package cell

import "cellier/entity"

// CommitMsg reports an edit that parsed successfully, or a toggled boolean,
// and is ready for persistence. Exactly one is emitted per confirmed edit
// or toggle; none on cancel or parse failure.
type CommitMsg struct {
	Value  entity.Value
	Row    int
	Column string
	// Raw is the buffer as the user typed it
	Raw string
	// TimeZone is the active zone for date and datetime columns, else blank
	TimeZone string
}
