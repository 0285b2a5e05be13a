package usecase

import (
	"context"
	"errors"

	"svw.info/sudoku-editor/internal/domain"
	"svw.info/sudoku-editor/internal/editor"
	"svw.info/sudoku-editor/internal/ports"
)

// Service is the interactive-phase surface consumed by the CLI adapter:
// board edits, rendering, and the whole-board consistency check.
type Service struct {
	Editor    *editor.Editor
	Validator ports.Validator
}

func NewService(ed *editor.Editor, v ports.Validator) *Service {
	return &Service{Editor: ed, Validator: v}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Place(row, col, digit int) (domain.OpResult, error) {
	if u.Editor == nil {
		return domain.ResultOK, errNotConfigured
	}
	return u.Editor.Place(row, col, digit), nil
}

func (u *Service) Erase(row, col int) (domain.OpResult, error) {
	if u.Editor == nil {
		return domain.ResultOK, errNotConfigured
	}
	return u.Editor.Erase(row, col), nil
}

func (u *Service) Render() (string, error) {
	if u.Editor == nil {
		return "", errNotConfigured
	}
	return u.Editor.Render(), nil
}

// Check validates the whole board against the uniqueness rules.
func (u *Service) Check(ctx context.Context) (bool, []domain.CellCoord, error) {
	if u.Editor == nil || u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, u.Editor.Board())
}
