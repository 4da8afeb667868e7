//go:build !tinygo

package hal

import (
	"io"
	"os"

	"github.com/fogleman/gg"
)

// RenderSnapshot draws the text grid into a new image context, one
// cellWidth x cellHeight box per cell.
func RenderSnapshot(text TextBuffer) *gg.Context {
	dc := gg.NewContext(text.Width()*cellWidth, text.Height()*cellHeight)
	for row := 0; row < text.Height(); row++ {
		for col := 0; col < text.Width(); col++ {
			ch, fg, bg := splitCell(text.Load(row, col))
			x := float64(col * cellWidth)
			y := float64(row * cellHeight)

			b := Palette[bg]
			dc.SetRGB255(int(b[0]), int(b[1]), int(b[2]))
			dc.DrawRectangle(x, y, cellWidth, cellHeight)
			dc.Fill()

			f := Palette[fg]
			dc.SetRGB255(int(f[0]), int(f[1]), int(f[2]))
			switch {
			case ch == placeholderChar:
				dc.DrawRectangle(x+2, y+4, cellWidth-4, cellHeight-8)
				dc.Fill()
			case ch > ' ' && ch < 0x7F:
				dc.DrawString(string(rune(ch)), x, y+glyphBaseline)
			}
		}
	}
	return dc
}

// WriteSnapshot encodes a PNG rendering of the grid to w.
func WriteSnapshot(w io.Writer, text TextBuffer) error {
	return RenderSnapshot(text).EncodePNG(w)
}

// SaveSnapshot writes a PNG rendering of the grid to path.
func SaveSnapshot(path string, text TextBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSnapshot(f, text); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
