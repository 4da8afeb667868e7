package vga

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"iberos/hal"
)

func newTestWriter() (*Writer, *hal.TextMemory) {
	mem := hal.NewTextMemory(Width, Height)
	return NewWriter(mem), mem
}

func TestNewColorCode(t *testing.T) {
	tests := []struct {
		fg, bg Color
		want   ColorCode
	}{
		{White, Black, 0x0F},
		{Black, White, 0xF0},
		{LightCyan, Blue, 0x1B},
		{Color(0x1E), Color(0x21), 0x1E},
	}
	for _, tt := range tests {
		got := NewColorCode(tt.fg, tt.bg)
		if got != tt.want {
			t.Fatalf("NewColorCode(%d, %d) = %#x, want %#x", tt.fg, tt.bg, got, tt.want)
		}
		if got.Foreground() != tt.fg&0x0F || got.Background() != tt.bg&0x0F {
			t.Fatalf("NewColorCode(%d, %d) unpacks to %d/%d", tt.fg, tt.bg, got.Foreground(), got.Background())
		}
	}
}

func TestColorString(t *testing.T) {
	if got := LightCyan.String(); got != "light_cyan" {
		t.Fatalf("LightCyan.String() = %q, want light_cyan", got)
	}
	if got := Color(16).String(); got != "unknown" {
		t.Fatalf("Color(16).String() = %q, want unknown", got)
	}
}

func TestWriteByteSingleStore(t *testing.T) {
	w, mem := newTestWriter()

	before := mem.Stores()
	w.WriteByte('A')
	if got := mem.Stores() - before; got != 1 {
		t.Fatalf("WriteByte() stores = %d, want 1", got)
	}

	c := w.Cell(Height-1, 0)
	if c.Char != 'A' || c.Color != DefaultColor {
		t.Fatalf("Cell(bottom, 0) = %+v, want 'A' in %#x", c, DefaultColor)
	}
	if got := mem.Load(Height-1, 0); got != uint16(DefaultColor)<<8|'A' {
		t.Fatalf("raw cell = %#04x, want character low, attribute high", got)
	}
	if w.Column() != 1 {
		t.Fatalf("Column() = %d, want 1", w.Column())
	}
}

func TestWriteStringPlaceholder(t *testing.T) {
	w, _ := newTestWriter()

	w.WriteString("a\tb\xffc~")
	want := []byte{'a', Placeholder, 'b', Placeholder, 'c', '~'}
	for col, ch := range want {
		if got := w.Cell(Height-1, col).Char; got != ch {
			t.Fatalf("Cell(bottom, %d) = %#x, want %#x", col, got, ch)
		}
	}
	if w.Column() != len(want) {
		t.Fatalf("Column() = %d, want %d", w.Column(), len(want))
	}
}

func TestWriteUTF8KeepsAlignment(t *testing.T) {
	w, _ := newTestWriter()

	// Two-byte rune: each byte becomes one placeholder.
	fmt.Fprint(w, "é!")
	if w.Column() != 3 {
		t.Fatalf("Column() = %d, want 3", w.Column())
	}
	if got := w.Cell(Height-1, 2).Char; got != '!' {
		t.Fatalf("Cell(bottom, 2) = %q, want '!'", got)
	}
}

func TestScrollOnWrap(t *testing.T) {
	w, mem := newTestWriter()

	// Mark every row so the shift is visible.
	for row := 0; row < Height; row++ {
		mem.Store(row, 0, uint16(DefaultColor)<<8|uint16('A'+row))
	}

	line := strings.Repeat("x", Width-1) + "y"
	w.WriteString(line)
	if w.Column() != Width {
		t.Fatalf("Column() = %d after full line, want %d", w.Column(), Width)
	}
	if got := w.Cell(Height-2, 0).Char; got != 'A'+Height-2 {
		t.Fatalf("row %d scrolled early: %q", Height-2, got)
	}

	w.WriteByte('z')

	if w.Column() != 1 {
		t.Fatalf("Column() = %d after wrap, want 1", w.Column())
	}
	for row := 0; row < Height-2; row++ {
		if got := w.Cell(row, 0).Char; got != byte('A'+row+1) {
			t.Fatalf("Cell(%d, 0) = %q, want %q", row, got, 'A'+row+1)
		}
	}
	if got := w.RowText(Height - 2); got != line {
		t.Fatalf("RowText(%d) = %q, want the wrapped line", Height-2, got)
	}
	if got := w.RowText(Height - 1); got != "z" {
		t.Fatalf("RowText(bottom) = %q, want %q", got, "z")
	}
}

func TestNewLinePreservesColorAndClearsWithActive(t *testing.T) {
	w, _ := newTestWriter()

	red := NewColorCode(Red, Black)
	w.WriteStringColor("hot", red)
	w.SetColorCode(NewColorCode(White, Blue))
	w.NewLine()

	if c := w.Cell(Height-2, 0); c.Char != 'h' || c.Color != red {
		t.Fatalf("Cell(%d, 0) = %+v, want 'h' in red", Height-2, c)
	}
	for col := 0; col < Width; col++ {
		c := w.Cell(Height-1, col)
		if c.Char != ' ' || c.Color != NewColorCode(White, Blue) {
			t.Fatalf("Cell(bottom, %d) = %+v, want blank in active color", col, c)
		}
	}
	if w.Column() != 0 {
		t.Fatalf("Column() = %d, want 0", w.Column())
	}
}

func TestClearScreen(t *testing.T) {
	w, _ := newTestWriter()

	w.Println("line one")
	w.Print("line two")
	w.ClearScreen()

	for row := 0; row < Height; row++ {
		if got := w.RowText(row); got != "" {
			t.Fatalf("RowText(%d) = %q after clear, want empty", row, got)
		}
	}
	if w.Column() != 0 {
		t.Fatalf("Column() = %d, want 0", w.Column())
	}
}

func TestClearRowOutOfRange(t *testing.T) {
	w, mem := newTestWriter()

	before := mem.Stores()
	w.ClearRow(-1)
	w.ClearRow(Height)
	if got := mem.Stores() - before; got != 0 {
		t.Fatalf("ClearRow() out of range stores = %d, want 0", got)
	}

	w.ClearRow(3)
	if got := mem.Stores() - before; got != Width {
		t.Fatalf("ClearRow(3) stores = %d, want %d", got, Width)
	}
}

func TestPrintCentered(t *testing.T) {
	w, _ := newTestWriter()

	w.Print("stale")
	w.PrintCentered("OK", Yellow)

	row := Height - 2
	want := strings.Repeat(" ", 39) + "OK"
	if got := w.RowText(row); got != want {
		t.Fatalf("RowText(%d) = %q, want %q", row, got, want)
	}
	if c := w.Cell(row, 39); c.Color != NewColorCode(Yellow, Black) {
		t.Fatalf("Cell(%d, 39).Color = %#x, want yellow", row, c.Color)
	}
	if w.ColorCode() != DefaultColor {
		t.Fatalf("ColorCode() = %#x after PrintCentered, want %#x", w.ColorCode(), DefaultColor)
	}
	if w.Column() != 0 {
		t.Fatalf("Column() = %d, want 0", w.Column())
	}
}

func TestPrintCenteredLongText(t *testing.T) {
	w, _ := newTestWriter()

	text := strings.Repeat("w", Width+5)
	w.PrintCentered(text, Green)

	if got := w.RowText(Height - 3); got != text[:Width] {
		t.Fatalf("RowText(%d) = %q, want first %d bytes", Height-3, got, Width)
	}
	if got := w.RowText(Height - 2); got != text[Width:] {
		t.Fatalf("RowText(%d) = %q, want the remainder", Height-2, got)
	}
}

func TestColorScopedWritesRestore(t *testing.T) {
	w, _ := newTestWriter()

	custom := NewColorCode(LightGreen, DarkGray)
	w.SetColorCode(custom)
	w.PrintLogo()
	if got := w.ColorCode(); got != custom {
		t.Fatalf("ColorCode() = %#x after PrintLogo, want %#x", got, custom)
	}

	w.Print("after")
	if c := w.Cell(Height-1, 0); c.Color != custom {
		t.Fatalf("next write color = %#x, want %#x", c.Color, custom)
	}

	found := false
	for row := 0; row < Height; row++ {
		if strings.Contains(w.RowText(row), "A Go Microkernel OS") {
			found = true
			if c := w.Cell(row, 6); c.Color != LogoColor {
				t.Fatalf("tagline color = %#x, want %#x", c.Color, LogoColor)
			}
		}
	}
	if !found {
		t.Fatal("logo tagline not on screen")
	}
}

func TestPrintf(t *testing.T) {
	w, _ := newTestWriter()

	w.Printf("PID %d: %q", 3, "hi")
	if got := w.RowText(Height - 1); got != `PID 3: "hi"` {
		t.Fatalf("RowText(bottom) = %q", got)
	}
}

// faultyBuffer panics on Store once armed.
type faultyBuffer struct {
	*hal.TextMemory
	armed bool
}

func (b *faultyBuffer) Store(row, col int, v uint16) {
	if b.armed {
		panic("bus error")
	}
	b.TextMemory.Store(row, col, v)
}

func TestStorePanicReleasesLock(t *testing.T) {
	buf := &faultyBuffer{TextMemory: hal.NewTextMemory(Width, Height)}
	w := NewWriter(buf)
	buf.armed = true

	ops := []struct {
		name string
		fn   func()
	}{
		{"WriteByte", func() { w.WriteByte('a') }},
		{"WriteString", func() { w.WriteString("a") }},
		{"Write", func() { w.Write([]byte("a")) }},
		{"NewLine", func() { w.NewLine() }},
		{"ClearRow", func() { w.ClearRow(0) }},
	}
	for _, op := range ops {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s() did not panic", op.name)
				}
			}()
			op.fn()
		}()

		done := make(chan struct{})
		go func() {
			w.SetColorCode(DefaultColor)
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("writer still locked after %s() panicked", op.name)
		}
	}
}
