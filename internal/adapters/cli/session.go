// Package cli implements the interactive command loop: it reads line
// commands, dispatches them to the use-case layer, and reports results
// as one-line messages. All failures here are non-fatal; the session
// continues until quit or end of input.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"svw.info/sudoku-editor/internal/domain"
	"svw.info/sudoku-editor/internal/usecase"
)

type Session struct {
	UC   *usecase.Service
	In   io.Reader
	Out  io.Writer
	Echo bool // echo each input line, for scripted transcripts
}

func New(uc *usecase.Service, in io.Reader, out io.Writer, echo bool) *Session {
	return &Session{UC: uc, In: in, Out: out, Echo: echo}
}

// resultMessage maps a non-OK board outcome to its operator message.
func resultMessage(res domain.OpResult) string {
	switch res {
	case domain.ResultOutOfRange:
		return "Bad row index, column index, or digit."
	case domain.ResultOccupied:
		return "Selected board space is already occupied."
	case domain.ResultRuleViolation:
		return "Digit placement violates Sudoku rules."
	case domain.ResultEmpty:
		return "Selected board space is already empty."
	case domain.ResultProtected:
		return "Cannot erase an initialization square."
	default:
		return "Unexpected result: " + res.String()
	}
}

// parseOperands converts command operands to integers, requiring an
// exact count. Any shape problem is reported the same way as an
// out-of-range argument.
func parseOperands(args []string, want int) ([]int, bool) {
	if len(args) != want {
		return nil, false
	}
	out := make([]int, want)
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

// Run executes the read-eval-print loop until quit, end of input, or
// context cancellation. Commands:
//
//	q              quit
//	p              print the board
//	a <r> <c> <d>  place a digit
//	e <r> <c>      erase a digit
func (s *Session) Run(ctx context.Context) error {
	sc := bufio.NewScanner(s.In)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.Out, "command: ")
		if !sc.Scan() {
			return sc.Err()
		}
		line := sc.Text()
		if s.Echo {
			fmt.Fprintln(s.Out, line)
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "q":
			return nil
		case "p":
			grid, err := s.UC.Render()
			if err != nil {
				return err
			}
			fmt.Fprint(s.Out, grid)
		case "a":
			ops, ok := parseOperands(fields[1:], 3)
			if !ok {
				fmt.Fprintln(s.Out, resultMessage(domain.ResultOutOfRange))
				continue
			}
			res, err := s.UC.Place(ops[0], ops[1], ops[2])
			if err != nil {
				return err
			}
			if res != domain.ResultOK {
				fmt.Fprintln(s.Out, resultMessage(res))
			}
		case "e":
			ops, ok := parseOperands(fields[1:], 2)
			if !ok {
				fmt.Fprintln(s.Out, resultMessage(domain.ResultOutOfRange))
				continue
			}
			res, err := s.UC.Erase(ops[0], ops[1])
			if err != nil {
				return err
			}
			if res != domain.ResultOK {
				fmt.Fprintln(s.Out, resultMessage(res))
			}
		default:
			fmt.Fprintf(s.Out, "Unknown command %s\n", line)
		}
	}
}
