package domain

// Board holds current values and which cells are fixed givens.
// Storage is 0-based; the editor's operations take 1-based row and
// column indices, matching standard Sudoku nomenclature.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// CellCoord identifies a cell on the board (0-based).
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
