package editor

import "strings"

// separator lines up with the 25-character content rows.
const separator = "-------------------------"

// Render projects the board as a fixed-width text grid: a dash line
// before the first row and after every third row, each content row
// framed by '|' with an extra bar after the 3rd and 6th columns.
// Empty cells render as a blank.
func (e *Editor) Render() string {
	var sb strings.Builder
	sb.WriteString(separator)
	sb.WriteByte('\n')
	for r := 0; r < 9; r++ {
		sb.WriteByte('|')
		for c := 0; c < 9; c++ {
			sb.WriteByte(' ')
			if v := e.board.Values[r][c]; v == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('0' + v)
			}
			if (c+1)%3 == 0 {
				sb.WriteString(" |")
			}
		}
		sb.WriteByte('\n')
		if (r+1)%3 == 0 {
			sb.WriteString(separator)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
