package kernel

import (
	"sync"
	"sync/atomic"
)

// PanicInfo contains details about a recovered panic.
type PanicInfo struct {
	Value any
	Stack []byte
}

// Panicker turns a recovered panic into panic mode for one system
// instance. The handler runs at most once; later panics are still
// recovered but only the first is reported.
type Panicker struct {
	active  atomic.Bool
	once    sync.Once
	handler func(PanicInfo)
}

// NewPanicker returns a Panicker that reports the first panic to fn.
// fn may be nil and must not panic.
func NewPanicker(fn func(PanicInfo)) *Panicker {
	return &Panicker{handler: fn}
}

// Active reports whether a panic has been recovered.
func (p *Panicker) Active() bool {
	return p.active.Load()
}

// Recover must be deferred directly. It stops a panic in the calling
// goroutine and hands it to the handler.
func (p *Panicker) Recover() {
	if v := recover(); v != nil {
		p.trigger(PanicInfo{Value: v})
	}
}

func (p *Panicker) trigger(info PanicInfo) {
	p.once.Do(func() {
		p.active.Store(true)
		info.Stack = captureStack()
		if p.handler != nil {
			p.handler(info)
		}
	})
}
