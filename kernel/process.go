package kernel

import (
	"sync"
	"sync/atomic"
)

// PID identifies a process. PIDs start at 1 and are never reused.
type PID uint32

// Allocator hands out PIDs from a single increasing counter.
// It is safe for concurrent use.
type Allocator struct {
	next atomic.Uint32
}

// NewAllocator returns an allocator whose first PID is 1.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next returns the next unused PID.
func (a *Allocator) Next() PID {
	return PID(a.next.Add(1))
}

// Process is the identity and inbox of one logical actor. It is not a
// scheduled OS process.
type Process struct {
	_    [0]func() // prevent accidental copying.
	pid  PID
	name string

	mu    sync.Mutex
	inbox mailbox
}

// NewProcess creates a process with the next PID from a and an empty inbox.
func NewProcess(a *Allocator, name string) *Process {
	return &Process{pid: a.Next(), name: name}
}

// PID returns the process ID.
func (p *Process) PID() PID { return p.pid }

// Name returns the display name.
func (p *Process) Name() string { return p.name }

// Pending returns the number of messages waiting in the inbox.
func (p *Process) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inbox.len()
}

// Send copies payload into a message from p and appends it to the inbox of
// to. It never blocks: false means the inbox was full and nothing changed.
//
// Only the receiver is locked; p's PID is fixed at creation.
func (p *Process) Send(to *Process, kind Kind, payload []byte) bool {
	if to == nil {
		return false
	}
	msg := newMessage(p.pid, to.pid, kind, payload)

	to.mu.Lock()
	defer to.mu.Unlock()
	return to.inbox.push(msg)
}

// Receive removes and returns the oldest message in the inbox, or false if
// the inbox is empty. Each call returns at most one message.
func (p *Process) Receive() (Message, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inbox.pop()
}
