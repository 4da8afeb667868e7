//go:build !tinygo

package hal

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Glyph cell size in pixels for the rendered text grid.
const (
	cellWidth     = 8
	cellHeight    = 16
	glyphBaseline = 12
)

// placeholderChar is drawn as a solid block (code page 437 0xFE).
const placeholderChar = 0xFE

// textRenderer paints a TextBuffer into an RGB565 framebuffer.
type textRenderer struct {
	text  TextBuffer
	fb    *hostFramebuffer
	font  tinyfont.Fonter
	cells []uint16
}

func newTextRenderer(text TextBuffer) *textRenderer {
	return &textRenderer{
		text:  text,
		fb:    newHostFramebuffer(text.Width()*cellWidth, text.Height()*cellHeight),
		font:  &proggy.TinySZ8pt7b,
		cells: make([]uint16, text.Width()*text.Height()),
	}
}

func (r *textRenderer) snapshot() {
	if m, ok := r.text.(*TextMemory); ok {
		m.Snapshot(r.cells)
		return
	}
	w := r.text.Width()
	for row := 0; row < r.text.Height(); row++ {
		for col := 0; col < w; col++ {
			r.cells[row*w+col] = r.text.Load(row, col)
		}
	}
}

// render redraws every cell.
func (r *textRenderer) render() {
	r.snapshot()

	r.fb.mu.Lock()
	defer r.fb.mu.Unlock()

	d := fbDisplay{fb: r.fb}
	w := r.text.Width()
	for i, v := range r.cells {
		ch, fg, bg := splitCell(v)
		x := (i % w) * cellWidth
		y := (i / w) * cellHeight

		d.fill(x, y, cellWidth, cellHeight, palette565(bg))
		switch {
		case ch == placeholderChar:
			d.fill(x+2, y+4, cellWidth-4, cellHeight-8, palette565(fg))
		case ch > ' ' && ch < 0x7F:
			c := Palette[fg]
			tinyfont.DrawChar(d, r.font, int16(x), int16(y+glyphBaseline), rune(ch),
				color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xFF})
		}
	}
}

// fbDisplay adapts the framebuffer to the drivers.Displayer tinyfont draws
// into. Callers hold fb.mu.
type fbDisplay struct {
	fb *hostFramebuffer
}

var _ drivers.Displayer = fbDisplay{}

func (d fbDisplay) Size() (x, y int16) {
	return int16(d.fb.width), int16(d.fb.height)
}

func (d fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.fb.setPixel565(int(x), int(y), rgb565(c.R, c.G, c.B))
}

func (d fbDisplay) Display() error { return nil }

func (d fbDisplay) fill(x, y, width, height int, pixel uint16) {
	for py := y; py < y+height; py++ {
		for px := x; px < x+width; px++ {
			d.fb.setPixel565(px, py, pixel)
		}
	}
}
