//go:build !tinygo

package hal

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// ansiColor maps VGA palette indices to ANSI SGR colour numbers.
var ansiColor = [16]int{0, 4, 2, 6, 1, 5, 3, 7, 60, 64, 62, 66, 61, 65, 63, 67}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// DumpText writes the grid as text, one line per row with trailing blanks
// trimmed. With ansi set, cell colours are emitted as SGR escapes.
func DumpText(w io.Writer, text TextBuffer, ansi bool) error {
	bw := bufio.NewWriter(w)
	for row := 0; row < text.Height(); row++ {
		end := text.Width()
		for end > 0 {
			ch, _, bg := splitCell(text.Load(row, end-1))
			if (ch != ' ' && ch != 0) || (ansi && bg != 0) {
				break
			}
			end--
		}

		last := -1
		for col := 0; col < end; col++ {
			ch, fg, bg := splitCell(text.Load(row, col))
			if ansi {
				attr := int(bg)<<4 | int(fg)
				if attr != last {
					bw.WriteString("\x1b[" + strconv.Itoa(30+ansiColor[fg]) + ";" + strconv.Itoa(40+ansiColor[bg]) + "m")
					last = attr
				}
			}
			bw.WriteByte(printableByte(ch))
		}
		if ansi && last >= 0 {
			bw.WriteString("\x1b[0m")
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func printableByte(ch byte) byte {
	switch {
	case ch == 0:
		return ' '
	case ch < ' ' || ch > '~':
		return '#'
	default:
		return ch
	}
}
