//go:build tinygo && baremetal

package hal

import (
	"runtime/volatile"
	"unsafe"
)

type tinyGoHAL struct {
	text *vgaText
}

// New returns the bare-metal HAL for a PC-compatible machine in colour text
// mode. The text buffer is the device memory at TextBase.
func New() HAL {
	return &tinyGoHAL{
		text: &vgaText{cells: (*[TextWidth * TextHeight]uint16)(unsafe.Pointer(TextBase))},
	}
}

func (h *tinyGoHAL) Logger() Logger   { return printLogger{} }
func (h *tinyGoHAL) Text() TextBuffer { return h.text }
func (h *tinyGoHAL) Delay() Delay     { return spinDelay{} }

// vgaText wraps the device buffer. Only bounded, volatile cell accesses are
// exposed; the pointer never leaves this type.
type vgaText struct {
	cells *[TextWidth * TextHeight]uint16
}

func (t *vgaText) Width() int  { return TextWidth }
func (t *vgaText) Height() int { return TextHeight }

func (t *vgaText) Load(row, col int) uint16 {
	if row < 0 || row >= TextHeight || col < 0 || col >= TextWidth {
		return 0
	}
	return volatile.LoadUint16(&t.cells[row*TextWidth+col])
}

func (t *vgaText) Store(row, col int, v uint16) {
	if row < 0 || row >= TextHeight || col < 0 || col >= TextWidth {
		return
	}
	volatile.StoreUint16(&t.cells[row*TextWidth+col], v)
}
