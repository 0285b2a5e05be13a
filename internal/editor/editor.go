// Package editor implements the Sudoku board state machine: a 9x9 grid
// of digits with fixed-given protection, where every mutation is gated
// by the row, column, and region uniqueness rules.
package editor

import (
	"svw.info/sudoku-editor/internal/domain"
)

// Editor owns a single board plus its lifecycle phase. It is not safe
// for concurrent use; there is exactly one logical actor per board.
type Editor struct {
	board domain.Board
	phase domain.Phase
}

// New returns an editor with an all-empty, all-unfixed board, ready
// for seeding.
func New() *Editor {
	return &Editor{phase: domain.PhaseSeeding}
}

// inRange reports whether a 1-based row, column, or digit is valid.
func inRange(v int) bool { return v >= 1 && v <= 9 }

// Seed places a fixed given. Valid only during the seeding phase; once
// the editor is sealed the initial layout is protected and Seed refuses
// with ResultProtected. Preconditions otherwise match Place, and on
// success the cell is marked fixed.
func (e *Editor) Seed(row, col, digit int) domain.OpResult {
	if e.phase != domain.PhaseSeeding {
		return domain.ResultProtected
	}
	if !inRange(row) || !inRange(col) || !inRange(digit) {
		return domain.ResultOutOfRange
	}
	if e.board.Values[row-1][col-1] != 0 {
		return domain.ResultOccupied
	}
	if e.RowContains(row, digit) || e.ColContains(col, digit) || e.RegionContains(row, col, digit) {
		return domain.ResultRuleViolation
	}
	e.board.Values[row-1][col-1] = uint8(digit)
	e.board.Fixed[row-1][col-1] = true
	return domain.ResultOK
}

// Seal transitions the editor from seeding to interactive editing.
// The transition is one-way; calling Seal again has no effect.
func (e *Editor) Seal() {
	e.phase = domain.PhaseInteractive
}

// Place writes a digit into an empty cell. The cell stays non-fixed,
// so it can be erased later. On any failure the board is unchanged.
func (e *Editor) Place(row, col, digit int) domain.OpResult {
	if !inRange(row) || !inRange(col) || !inRange(digit) {
		return domain.ResultOutOfRange
	}
	if e.board.Values[row-1][col-1] != 0 {
		return domain.ResultOccupied
	}
	if e.RowContains(row, digit) || e.ColContains(col, digit) || e.RegionContains(row, col, digit) {
		return domain.ResultRuleViolation
	}
	e.board.Values[row-1][col-1] = uint8(digit)
	return domain.ResultOK
}

// Erase clears a non-fixed, non-empty cell. Fixed givens are refused
// with ResultProtected; their fixed flag is never cleared.
func (e *Editor) Erase(row, col int) domain.OpResult {
	if !inRange(row) || !inRange(col) {
		return domain.ResultOutOfRange
	}
	if e.board.Values[row-1][col-1] == 0 {
		return domain.ResultEmpty
	}
	if e.board.Fixed[row-1][col-1] {
		return domain.ResultProtected
	}
	e.board.Values[row-1][col-1] = 0
	return domain.ResultOK
}

// RowContains reports whether the given row already holds digit.
// The scan covers all 9 columns and stops only on a true match.
func (e *Editor) RowContains(row, digit int) bool {
	if !inRange(row) {
		return false
	}
	for c := 0; c < 9; c++ {
		if e.board.Values[row-1][c] == uint8(digit) {
			return true
		}
	}
	return false
}

// ColContains reports whether the given column already holds digit.
func (e *Editor) ColContains(col, digit int) bool {
	if !inRange(col) {
		return false
	}
	for r := 0; r < 9; r++ {
		if e.board.Values[r][col-1] == uint8(digit) {
			return true
		}
	}
	return false
}

// RegionContains reports whether the 3x3 region containing (row, col)
// already holds digit. Region membership is computed arithmetically:
// integer division maps each axis onto bands {1-3, 4-6, 7-9}.
func (e *Editor) RegionContains(row, col, digit int) bool {
	if !inRange(row) || !inRange(col) {
		return false
	}
	br, bc := (row-1)/3*3, (col-1)/3*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if e.board.Values[br+dr][bc+dc] == uint8(digit) {
				return true
			}
		}
	}
	return false
}

// Board returns a snapshot copy of the current board. Mutating the
// copy does not affect the editor.
func (e *Editor) Board() *domain.Board {
	b := e.board
	return &b
}

// Phase returns the current lifecycle phase.
func (e *Editor) Phase() domain.Phase {
	return e.phase
}
