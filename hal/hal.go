package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// TextBuffer is a fixed grid of 16-bit text-mode cells.
//
// Each cell word is laid out as the hardware sees it: character in the low
// byte, attribute in the high byte. Every Store is a single side-effecting
// store that the device may observe; implementations never batch, cache or
// reorder them. Accesses outside the grid are ignored and Load returns 0.
type TextBuffer interface {
	Width() int
	Height() int
	Load(row, col int) uint16
	Store(row, col int, v uint16)
}

// Delay pauses the caller. The unit length is platform-defined.
type Delay interface {
	Pause(units uint64)
}

// HAL provides the only contact point between the OS and the outside world.
type HAL interface {
	Logger() Logger
	Text() TextBuffer
	Delay() Delay
}

// Text-mode geometry of the PC-compatible display.
const (
	TextWidth  = 80
	TextHeight = 25

	// TextBase is the physical address of the colour text buffer.
	TextBase uintptr = 0xB8000
)
