// Package seedfile loads the initial puzzle configuration: one given
// per line as three digit characters (row, column, digit), each 1..9.
package seedfile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"svw.info/sudoku-editor/internal/domain"
	"svw.info/sudoku-editor/internal/editor"
)

// LoadError reports the first bad configuration line. Any LoadError is
// fatal to the session; the loader stops at the first one.
type LoadError struct {
	Line   int
	Reason string
	Result domain.OpResult
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s in configuration file at line %d", e.Reason, e.Line)
}

const (
	reasonFormat    = "illegal format"
	reasonPlacement = "illegal placement"
)

// Load seeds the editor from one configuration line per scanner line.
// Shape and range problems report "illegal format"; occupied cells and
// rule conflicts report "illegal placement". Line numbers are 1-based.
func Load(r io.Reader, ed *editor.Editor) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if len(text) != 3 {
			return &LoadError{Line: line, Reason: reasonFormat, Result: domain.ResultOutOfRange}
		}
		var v [3]int
		for i := 0; i < 3; i++ {
			ch := text[i]
			if ch < '0' || ch > '9' {
				return &LoadError{Line: line, Reason: reasonFormat, Result: domain.ResultOutOfRange}
			}
			v[i] = int(ch - '0')
		}
		switch res := ed.Seed(v[0], v[1], v[2]); res {
		case domain.ResultOK:
		case domain.ResultOutOfRange:
			return &LoadError{Line: line, Reason: reasonFormat, Result: res}
		default:
			return &LoadError{Line: line, Reason: reasonPlacement, Result: res}
		}
	}
	return sc.Err()
}

// LoadFile opens path and seeds the editor from its contents.
func LoadFile(path string, ed *editor.Editor) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Load(f, ed)
}
