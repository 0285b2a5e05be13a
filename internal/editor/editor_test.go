package editor

import (
	"context"
	"testing"
	"time"

	"svw.info/sudoku-editor/internal/domain"
	"svw.info/sudoku-editor/internal/validator"
)

// A classic, consistent Sudoku layout (0 = empty) used as seed data.
var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

// seedSample builds a sealed editor holding the sample layout.
func seedSample(t *testing.T) *Editor {
	t.Helper()
	ed := New()
	for r := 1; r <= 9; r++ {
		for c := 1; c <= 9; c++ {
			v := sample[r-1][c-1]
			if v == 0 {
				continue
			}
			if res := ed.Seed(r, c, int(v)); res != domain.ResultOK {
				t.Fatalf("Seed(%d,%d,%d) = %v, want ok", r, c, v, res)
			}
		}
	}
	ed.Seal()
	return ed
}

func TestPlaceConflicts(t *testing.T) {
	ed := New()
	ed.Seal()

	steps := []struct {
		name    string
		r, c, d int
		want    domain.OpResult
	}{
		{"first placement", 1, 1, 5, domain.ResultOK},
		{"row conflict", 1, 2, 5, domain.ResultRuleViolation},
		{"column conflict", 2, 1, 5, domain.ResultRuleViolation},
		{"region conflict", 2, 2, 5, domain.ResultRuleViolation},
		{"clear elsewhere", 4, 4, 5, domain.ResultOK},
	}
	for _, st := range steps {
		if got := ed.Place(st.r, st.c, st.d); got != st.want {
			t.Fatalf("%s: Place(%d,%d,%d) = %v, want %v", st.name, st.r, st.c, st.d, got, st.want)
		}
	}
}

func TestFixedCellProtection(t *testing.T) {
	ed := New()
	if res := ed.Seed(1, 1, 3); res != domain.ResultOK {
		t.Fatalf("Seed failed: %v", res)
	}
	ed.Seal()

	if got := ed.Erase(1, 1); got != domain.ResultProtected {
		t.Fatalf("Erase(1,1) on fixed cell = %v, want protected", got)
	}
	if got := ed.Place(1, 1, 7); got != domain.ResultOccupied {
		t.Fatalf("Place(1,1,7) on fixed cell = %v, want occupied", got)
	}
	b := ed.Board()
	if b.Values[0][0] != 3 || !b.Fixed[0][0] {
		t.Fatalf("fixed cell mutated: value=%d fixed=%v", b.Values[0][0], b.Fixed[0][0])
	}
}

func TestEraseEmpty(t *testing.T) {
	ed := New()
	ed.Seal()
	if got := ed.Erase(5, 5); got != domain.ResultEmpty {
		t.Fatalf("Erase(5,5) on empty cell = %v, want empty", got)
	}
}

func TestPlaceThenEraseRestores(t *testing.T) {
	ed := seedSample(t)
	before := *ed.Board()

	if res := ed.Place(1, 3, 1); res != domain.ResultOK {
		t.Fatalf("Place failed: %v", res)
	}
	if res := ed.Erase(1, 3); res != domain.ResultOK {
		t.Fatalf("Erase failed: %v", res)
	}
	if after := *ed.Board(); after != before {
		t.Fatalf("board not restored after place+erase")
	}
}

func TestOutOfRangeLeavesBoardUnchanged(t *testing.T) {
	ed := seedSample(t)
	before := *ed.Board()

	cases := []struct {
		name    string
		r, c, d int
	}{
		{"zero row", 0, 5, 5},
		{"zero col", 5, 0, 5},
		{"zero digit", 5, 5, 0},
		{"row too big", 10, 5, 5},
		{"col too big", 5, 10, 5},
		{"digit too big", 5, 5, 10},
		{"negative row", -1, 5, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ed.Place(tc.r, tc.c, tc.d); got != domain.ResultOutOfRange {
				t.Fatalf("Place(%d,%d,%d) = %v, want out of range", tc.r, tc.c, tc.d, got)
			}
			if after := *ed.Board(); after != before {
				t.Fatalf("board mutated by rejected place")
			}
		})
	}
	if got := ed.Erase(0, 10); got != domain.ResultOutOfRange {
		t.Fatalf("Erase(0,10) = %v, want out of range", got)
	}
	if after := *ed.Board(); after != before {
		t.Fatalf("board mutated by rejected erase")
	}
}

// directRegionScan classifies regions via explicit bands, independent
// of the arithmetic used by the editor.
func directRegionScan(b *domain.Board, row, col, digit int) bool {
	bands := [3][3]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	var rows, cols [3]int
	for _, band := range bands {
		if row >= band[0] && row <= band[2] {
			rows = band
		}
		if col >= band[0] && col <= band[2] {
			cols = band
		}
	}
	for _, r := range rows {
		for _, c := range cols {
			if b.Values[r-1][c-1] == uint8(digit) {
				return true
			}
		}
	}
	return false
}

func TestRegionContainsAllCells(t *testing.T) {
	ed := seedSample(t)
	b := ed.Board()
	for r := 1; r <= 9; r++ {
		for c := 1; c <= 9; c++ {
			for d := 0; d <= 9; d++ {
				want := directRegionScan(b, r, c, d)
				if got := ed.RegionContains(r, c, d); got != want {
					t.Fatalf("RegionContains(%d,%d,%d) = %v, direct scan says %v", r, c, d, got, want)
				}
			}
		}
	}
}

func TestContainsFullScan(t *testing.T) {
	ed := New()
	// digit in the LAST cell of its row, column, and region: a scan
	// that quits after the first position would miss every one.
	if res := ed.Seed(1, 9, 4); res != domain.ResultOK {
		t.Fatalf("Seed failed: %v", res)
	}
	if res := ed.Seed(9, 1, 8); res != domain.ResultOK {
		t.Fatalf("Seed failed: %v", res)
	}
	ed.Seal()

	if !ed.RowContains(1, 4) {
		t.Fatalf("RowContains(1,4) = false, digit is at column 9")
	}
	if !ed.ColContains(1, 8) {
		t.Fatalf("ColContains(1,8) = false, digit is at row 9")
	}
	if !ed.RegionContains(2, 8, 4) {
		t.Fatalf("RegionContains(2,8,4) = false, digit is at (1,9)")
	}
	if ed.RowContains(1, 5) || ed.ColContains(1, 5) || ed.RegionContains(1, 1, 5) {
		t.Fatalf("contains reported a digit that is absent")
	}
}

func TestSeedAfterSealRefused(t *testing.T) {
	ed := New()
	ed.Seal()
	if got := ed.Seed(1, 1, 1); got != domain.ResultProtected {
		t.Fatalf("Seed after Seal = %v, want protected", got)
	}
	if b := ed.Board(); b.Values[0][0] != 0 || b.Fixed[0][0] {
		t.Fatalf("Seed after Seal mutated the board")
	}
	if ed.Phase() != domain.PhaseInteractive {
		t.Fatalf("Phase = %v, want interactive", ed.Phase())
	}
}

func TestInvariantsHoldUnderEditing(t *testing.T) {
	ed := seedSample(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// Interleave placements and erasures; only legal ones mutate.
	ops := []struct {
		place   bool
		r, c, d int
	}{
		{true, 1, 3, 1}, {true, 1, 4, 6}, {false, 1, 3, 0},
		{true, 3, 1, 1}, {true, 9, 1, 1}, {false, 3, 1, 0},
		{true, 5, 5, 5}, {true, 2, 2, 7}, {false, 5, 5, 0},
	}
	for _, op := range ops {
		if op.place {
			ed.Place(op.r, op.c, op.d)
		} else {
			ed.Erase(op.r, op.c)
		}
		ok, conf, err := validator.New().Validate(ctx, ed.Board())
		if err != nil || !ok {
			t.Fatalf("invariants broken after op %+v: err=%v conflicts=%v", op, err, conf)
		}
	}
}
