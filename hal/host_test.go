//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func putString(m *TextMemory, row int, s string, attr uint8) {
	for i := 0; i < len(s); i++ {
		m.Store(row, i, uint16(attr)<<8|uint16(s[i]))
	}
}

func TestDumpTextPlain(t *testing.T) {
	m := NewTextMemory(8, 3)
	putString(m, 0, "hi  ", 0x0F)
	putString(m, 2, "a\xfeb", 0x0F)

	var buf bytes.Buffer
	if err := DumpText(&buf, m, false); err != nil {
		t.Fatalf("DumpText() = %v", err)
	}
	want := "hi\n\na#b\n"
	if got := buf.String(); got != want {
		t.Fatalf("DumpText() = %q, want %q", got, want)
	}
}

func TestDumpTextANSI(t *testing.T) {
	m := NewTextMemory(4, 1)
	putString(m, 0, "ok", 0x0B)

	var buf bytes.Buffer
	if err := DumpText(&buf, m, true); err != nil {
		t.Fatalf("DumpText() = %v", err)
	}
	// light cyan on black
	want := "\x1b[96;40mok\x1b[0m\n"
	if got := buf.String(); got != want {
		t.Fatalf("DumpText() = %q, want %q", got, want)
	}
}

func TestIsTerminalNonFile(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Fatal("IsTerminal(bytes.Buffer) = true, want false")
	}
}

func TestWriteSnapshot(t *testing.T) {
	m := NewTextMemory(TextWidth, TextHeight)
	putString(m, 0, "snapshot", 0x1E)

	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, m); err != nil {
		t.Fatalf("WriteSnapshot() = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	b := img.Bounds()
	if b.Dx() != TextWidth*cellWidth || b.Dy() != TextHeight*cellHeight {
		t.Fatalf("snapshot size = %dx%d, want %dx%d", b.Dx(), b.Dy(), TextWidth*cellWidth, TextHeight*cellHeight)
	}

	// Top-left corner of cell (0, 0) is background blue.
	r, g, bl, _ := img.At(0, 0).RGBA()
	want := Palette[1]
	got := [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8)}
	for i := range got {
		if absDiff(got[i], want[i]) > 1 {
			t.Fatalf("pixel(0, 0) = %v, want %v", got, want)
		}
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestSaveSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screen.png")
	if err := SaveSnapshot(path, NewTextMemory(TextWidth, TextHeight)); err != nil {
		t.Fatalf("SaveSnapshot() = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	if _, err := png.DecodeConfig(f); err != nil {
		t.Fatalf("png.DecodeConfig() = %v", err)
	}
}

func TestRendererPaintsBackground(t *testing.T) {
	m := NewTextMemory(TextWidth, TextHeight)
	putString(m, 1, " ", 0x40)
	putString(m, 2, "\xfe", 0x0E)

	r := newTextRenderer(m)
	r.render()

	if got := r.fb.pixel565(cellWidth/2, cellHeight+cellHeight/2); got != palette565(4) {
		t.Fatalf("cell (1, 0) pixel = %#04x, want red %#04x", got, palette565(4))
	}
	if got := r.fb.pixel565(cellWidth/2, 2*cellHeight+cellHeight/2); got != palette565(14) {
		t.Fatalf("placeholder pixel = %#04x, want yellow %#04x", got, palette565(14))
	}
	if got := r.fb.pixel565(0, 0); got != palette565(0) {
		t.Fatalf("empty cell pixel = %#04x, want black", got)
	}
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	h := newHost(io.Discard, 0)

	var steps int
	err := runHeadless(context.Background(), h, func(HAL) func() error {
		return func() error {
			steps++
			return nil
		}
	}, HeadlessConfig{Hz: 1000, Ticks: 3})
	if err != nil {
		t.Fatalf("runHeadless() = %v, want nil", err)
	}
	if steps != 3 {
		t.Fatalf("steps = %d, want 3", steps)
	}
}

func TestRunHeadlessCanceled(t *testing.T) {
	h := newHost(io.Discard, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := runHeadless(ctx, h, func(HAL) func() error { return nil }, HeadlessConfig{Hz: 100})
	if err != context.DeadlineExceeded {
		t.Fatalf("runHeadless() = %v, want %v", err, context.DeadlineExceeded)
	}
}

func TestFinishHeadlessSnapshot(t *testing.T) {
	h := newHost(io.Discard, 0)
	path := filepath.Join(t.TempDir(), "out.png")

	if err := finishHeadless(h, HeadlessConfig{Snapshot: path}); err != nil {
		t.Fatalf("finishHeadless() = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}

	err := finishHeadless(h, HeadlessConfig{Snapshot: filepath.Join(path, "nested.png")})
	if err == nil || !strings.Contains(err.Error(), "snapshot") {
		t.Fatalf("finishHeadless() = %v, want snapshot error", err)
	}
}

func TestHostLogger(t *testing.T) {
	var buf bytes.Buffer
	h := newHost(&buf, 0)
	h.Logger().WriteLineString("boot: init")
	h.Logger().WriteLineBytes([]byte("boot: logo"))
	if got := buf.String(); got != "boot: init\nboot: logo\n" {
		t.Fatalf("logger output = %q", got)
	}
	h.Delay().Pause(5)
}
