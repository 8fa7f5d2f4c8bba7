package display

import (
	"fmt"
	"strings"
)

// Board prints an ASCII board as rendered by the server: X pieces red,
// O pieces blue, row numbers and column letters cyan.
func (d *Display) Board(ascii string) {
	lines := strings.Split(ascii, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		footer := i == len(lines)-1

		var sb strings.Builder
		for _, ch := range line {
			s := string(ch)
			switch {
			case ch == 'X' && !footer:
				sb.WriteString(d.paint(Red, s))
			case ch == 'O' && !footer:
				sb.WriteString(d.paint(Blue, s))
			case ch >= '1' && ch <= '8', footer && ch >= 'A' && ch <= 'H':
				sb.WriteString(d.paint(Cyan, s))
			default:
				sb.WriteString(s)
			}
		}
		fmt.Fprintln(d.out, sb.String())
	}
}
