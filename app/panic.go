package app

import (
	"fmt"
	"strings"

	"iberos/kernel"
	"iberos/vga"
)

var panicColor = vga.NewColorCode(vga.LightRed, vga.Black)

func installPanicHandler(s *system) {
	s.panicker = kernel.NewPanicker(func(info kernel.PanicInfo) {
		if s.log != nil {
			s.log.WriteLineString(fmt.Sprintf("[KERNEL PANIC] %v", info.Value))
			for _, line := range strings.Split(string(info.Stack), "\n") {
				if line == "" {
					continue
				}
				s.log.WriteLineString(line)
			}
		}
		paintPanic(s.w, info)
	})
}

// paintPanic writes the panic banner on the screen. The stack goes to the
// log only; the screen has room for the first frames at best.
func paintPanic(w *vga.Writer, info kernel.PanicInfo) {
	w.WriteStringColor(fmt.Sprintf("\n[KERNEL PANIC] %v\n", info.Value), panicColor)
}
