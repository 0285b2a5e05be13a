package ports

import (
	"context"

	"svw.info/sudoku-editor/internal/domain"
)

// Validator performs fast whole-board constraint checks (row/col/region).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}
