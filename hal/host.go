//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type hostHAL struct {
	logger *hostLogger
	text   *TextMemory
	delay  *hostDelay
}

// New returns a host HAL implementation.
func New() HAL {
	return newHost(os.Stdout, time.Second)
}

func newHost(w io.Writer, unit time.Duration) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: w},
		text:   NewTextMemory(TextWidth, TextHeight),
		delay:  &hostDelay{unit: unit},
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Text() TextBuffer { return h.text }
func (h *hostHAL) Delay() Delay     { return h.delay }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// hostDelay sleeps instead of spinning; one unit is roughly what the
// bare-metal spin loop takes under QEMU.
type hostDelay struct {
	unit time.Duration
}

func (d *hostDelay) Pause(units uint64) {
	if d.unit <= 0 || units == 0 {
		return
	}
	time.Sleep(time.Duration(units) * d.unit)
}
