//go:build tinygo && !baremetal

package hal

type tinyGoHostHAL struct {
	text *TextMemory
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no
// text-mode device to map.
func New() HAL {
	return &tinyGoHostHAL{text: NewTextMemory(TextWidth, TextHeight)}
}

func (h *tinyGoHostHAL) Logger() Logger   { return printLogger{} }
func (h *tinyGoHostHAL) Text() TextBuffer { return h.text }
func (h *tinyGoHostHAL) Delay() Delay     { return spinDelay{} }
