// pkg/core/grid.go
package core

// Snapshot is the agent's partial knowledge of the world, indexed [row][col].
// A nil entry is an unknown cell.
type Snapshot [][]*Content

// At returns the content of a known cell.
func (s Snapshot) At(c Coordinate) (Content, bool) {
	if c.Row < 0 || c.Row >= len(s) {
		return Content{}, false
	}
	row := s[c.Row]
	if c.Col < 0 || c.Col >= len(row) || row[c.Col] == nil {
		return Content{}, false
	}
	return *row[c.Col], true
}

// Known reports whether the cell's content is already known.
func (s Snapshot) Known(c Coordinate) bool {
	_, ok := s.At(c)
	return ok
}

// View is a small window of cells centered on the agent, indexed [row][col].
// Cells outside the world are nil.
type View [][]*Content

// Disclosure maps disclosed coordinates to their content. A nil value means
// the service claimed a cell without resolving its content.
type Disclosure map[Coordinate]*Content

// Match is a winning cell: where it is and how much it holds.
type Match struct {
	Coordinate Coordinate `json:"coordinate"`
	Quantity   int        `json:"quantity"`
}
