package kernel

import "sync"

const maxProcesses = 16

// Logger receives kernel diagnostics. hal.Logger satisfies it.
type Logger interface {
	WriteLineString(s string)
}

// System is the process table: a PID allocator plus the statically
// registered processes. Processes are spawned at boot and never destroyed.
type System struct {
	alloc *Allocator
	log   Logger

	mu    sync.Mutex
	procs [maxProcesses]*Process
	count int
}

// NewSystem creates an empty process table. log may be nil.
func NewSystem(log Logger) *System {
	return &System{alloc: NewAllocator(), log: log}
}

// Spawn registers a new process. It returns false once the table is full.
func (s *System) Spawn(name string) (*Process, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count >= maxProcesses {
		return nil, false
	}
	p := NewProcess(s.alloc, name)
	s.procs[s.count] = p
	s.count++
	return p, true
}

// Lookup finds a process by PID.
func (s *System) Lookup(pid PID) (*Process, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.procs[:s.count] {
		if p.pid == pid {
			return p, true
		}
	}
	return nil, false
}

// Processes returns the registered processes in spawn order.
func (s *System) Processes() []*Process {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Process, s.count)
	copy(out, s.procs[:s.count])
	return out
}

func (s *System) logLine(line string) {
	if s.log != nil {
		s.log.WriteLineString(line)
	}
}
