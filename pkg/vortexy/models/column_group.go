package models

// Allowed column group widths.
const (
	MinGroupWidth = 2
	MaxGroupWidth = 3
)

// ColumnGroup describes the contiguous columns holding one fan's data.
type ColumnGroup struct {
	// Name is the fan name taken from the header cell.
	Name string
	// Start is the 0-based index of the first column.
	Start int
	// Width is the number of columns (2 or 3).
	Width int
}

// End returns the 0-based index one past the last column of the group.
func (g ColumnGroup) End() int {
	return g.Start + g.Width
}
