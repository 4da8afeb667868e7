// Package vga drives a text-mode display: a fixed grid of character cells
// that the display device reads directly.
package vga

import (
	"fmt"
	"sync"

	"iberos/hal"
)

// Grid size of the text-mode display.
const (
	Width  = hal.TextWidth
	Height = hal.TextHeight
)

// Placeholder replaces bytes that are neither printable ASCII nor newline.
const Placeholder byte = 0xFE

// Writer is a scrolling terminal on the bottom row of the grid.
//
// The writer owns its TextBuffer; nothing else may write to it. Every
// exported method holds the writer lock for its whole duration, so a scroll
// never interleaves with another write.
type Writer struct {
	mu     sync.Mutex
	buf    hal.TextBuffer
	width  int
	height int
	column int
	color  ColorCode
}

// NewWriter returns a writer over buf with the cursor at column 0 and
// white-on-black text. The buffer is not cleared.
func NewWriter(buf hal.TextBuffer) *Writer {
	return &Writer{
		buf:    buf,
		width:  buf.Width(),
		height: buf.Height(),
		color:  DefaultColor,
	}
}

// Column returns the cursor column on the bottom row.
func (w *Writer) Column() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.column
}

// ColorCode returns the active attribute.
func (w *Writer) ColorCode() ColorCode {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.color
}

// SetColorCode changes the attribute used by later writes.
func (w *Writer) SetColorCode(c ColorCode) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.color = c
}

// Cell reads back one cell.
func (w *Writer) Cell(row, col int) Cell {
	w.mu.Lock()
	defer w.mu.Unlock()
	return cellFromWord(w.buf.Load(row, col))
}

// RowText returns the characters of a row with trailing blanks removed.
func (w *Writer) RowText(row int) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	line := make([]byte, w.width)
	end := 0
	for col := 0; col < w.width; col++ {
		ch := byte(w.buf.Load(row, col))
		if ch == 0 {
			ch = ' '
		}
		line[col] = ch
		if ch != ' ' {
			end = col + 1
		}
	}
	return string(line[:end])
}

// WriteByte writes b at the cursor. A newline scrolls instead of writing.
// It always returns nil.
func (w *Writer) WriteByte(b byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.writeByte(b)
	return nil
}

// WriteString writes s, replacing non-printable bytes with Placeholder.
func (w *Writer) WriteString(s string) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.writeString(s)
	return len(s), nil
}

// Write implements io.Writer with the same substitution as WriteString.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, b := range p {
		w.writeFiltered(b)
	}
	return len(p), nil
}

// WriteStringColor writes s in color c and then restores the previous
// attribute.
func (w *Writer) WriteStringColor(s string, c ColorCode) {
	w.mu.Lock()
	defer w.mu.Unlock()
	prev := w.color
	w.color = c
	w.writeString(s)
	w.color = prev
}

// NewLine scrolls the grid up one row and moves the cursor to column 0.
func (w *Writer) NewLine() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.newLine()
}

// ClearRow blanks one row in the active color. Rows outside the grid are
// ignored.
func (w *Writer) ClearRow(row int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.clearRow(row)
}

// ClearScreen blanks every row and moves the cursor to column 0.
func (w *Writer) ClearScreen() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for row := 0; row < w.height; row++ {
		w.clearRow(row)
	}
	w.column = 0
}

// PrintCentered starts a fresh line and prints text centered in fg on black,
// followed by a newline. The previous attribute is restored.
func (w *Writer) PrintCentered(text string, fg Color) {
	w.mu.Lock()
	defer w.mu.Unlock()

	prev := w.color
	w.color = NewColorCode(fg, Black)

	padding := 0
	if len(text) < w.width {
		padding = (w.width - len(text)) / 2
	}
	w.column = 0
	for i := 0; i < padding; i++ {
		w.writeByte(' ')
	}
	w.writeString(text)
	w.writeByte('\n')

	w.color = prev
}

// Print writes the default formatting of args.
func (w *Writer) Print(args ...any) {
	fmt.Fprint(w, args...)
}

// Printf writes a formatted string.
func (w *Writer) Printf(format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

// Println writes args followed by a newline.
func (w *Writer) Println(args ...any) {
	fmt.Fprintln(w, args...)
}

func (w *Writer) writeString(s string) {
	for i := 0; i < len(s); i++ {
		w.writeFiltered(s[i])
	}
}

func (w *Writer) writeFiltered(b byte) {
	if (b >= 0x20 && b <= 0x7E) || b == '\n' {
		w.writeByte(b)
		return
	}
	w.writeByte(Placeholder)
}

func (w *Writer) writeByte(b byte) {
	if b == '\n' {
		w.newLine()
		return
	}
	if w.column >= w.width {
		w.newLine()
	}
	w.buf.Store(w.height-1, w.column, Cell{Char: b, Color: w.color}.word())
	w.column++
}

// newLine copies every row up by one, cell by cell, then blanks the bottom
// row in the active color.
func (w *Writer) newLine() {
	for row := 1; row < w.height; row++ {
		for col := 0; col < w.width; col++ {
			w.buf.Store(row-1, col, w.buf.Load(row, col))
		}
	}
	w.clearRow(w.height - 1)
	w.column = 0
}

func (w *Writer) clearRow(row int) {
	if row < 0 || row >= w.height {
		return
	}
	blank := Cell{Char: ' ', Color: w.color}.word()
	for col := 0; col < w.width; col++ {
		w.buf.Store(row, col, blank)
	}
}
