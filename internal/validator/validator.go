package validator

import (
	"context"

	"svw.info/sudoku-editor/internal/domain"
)

// FastValidator performs whole-board constraint checks with bitmasks.
// The editor already gates every mutation, so a seeded or edited board
// should always validate; this is the defense-in-depth check run after
// configuration loading and used by tests to assert the invariants.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// group enumerates the 9 cells of one row, column, or region.
type group func(i int) (r, c int)

func scan(b *domain.Board, g group, conf *[]domain.CellCoord) {
	m := 0
	for i := 0; i < 9; i++ {
		r, c := g(i)
		val := b.Values[r][c]
		if val == 0 {
			continue
		}
		bit := 1 << val
		if m&bit != 0 {
			*conf = append(*conf, domain.CellCoord{Row: r, Col: c})
		}
		m |= bit
	}
}

// Validate reports whether the board satisfies row, column, and region
// uniqueness, returning the coordinates of any duplicate cells.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if err := ctx.Err(); err != nil {
		return false, nil, err
	}
	conf := make([]domain.CellCoord, 0, 8)
	for k := 0; k < 9; k++ {
		scan(b, func(i int) (int, int) { return k, i }, &conf)
		scan(b, func(i int) (int, int) { return i, k }, &conf)
		br, bc := k/3*3, k%3*3
		scan(b, func(i int) (int, int) { return br + i/3, bc + i%3 }, &conf)
	}
	return len(conf) == 0, conf, nil
}
