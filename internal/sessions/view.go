package sessions

// NoSelection marks a ViewState with no highlighted row.
const NoSelection = -1

// HighlightColor is the background of the selected results row.
const HighlightColor = "#ffff64"

// ViewState is the results table highlight of one visitor.
type ViewState struct {
	SelectedID    int    `json:"selected_id"`
	PreviousColor string `json:"previous_color"`
}

func NewViewState() ViewState {
	return ViewState{SelectedID: NoSelection}
}

// Select highlights row id, remembering color as the one to restore later.
// It returns the row that lost the highlight and its original color, or
// NoSelection.
func (v *ViewState) Select(id int, color string) (int, string) {
	prevID, prevColor := v.SelectedID, v.PreviousColor
	v.SelectedID = id
	v.PreviousColor = color
	return prevID, prevColor
}

func (v *ViewState) Reset() {
	*v = NewViewState()
}

// RowColor is the background of row id: the highlight when selected,
// otherwise base.
func (v ViewState) RowColor(id int, base string) string {
	if v.SelectedID != NoSelection && v.SelectedID == id {
		return HighlightColor
	}
	return base
}
