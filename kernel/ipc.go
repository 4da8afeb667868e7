package kernel

// SendResult describes the outcome of a send attempt.
type SendResult uint8

const (
	SendOK SendResult = iota
	SendErrNoProcess
	SendErrQueueFull
)

func (r SendResult) String() string {
	switch r {
	case SendOK:
		return "ok"
	case SendErrNoProcess:
		return "no such process"
	case SendErrQueueFull:
		return "queue full"
	default:
		return "unknown"
	}
}

// Send delivers a message between two registered processes. A full inbox is
// reported to the system logger and the message is dropped; retrying is up
// to the caller.
func (s *System) Send(from, to PID, kind Kind, payload []byte) SendResult {
	sender, ok := s.Lookup(from)
	if !ok {
		return SendErrNoProcess
	}
	receiver, ok := s.Lookup(to)
	if !ok {
		return SendErrNoProcess
	}
	if !sender.Send(receiver, kind, payload) {
		s.logLine("Process " + receiver.name + " mailbox is full!")
		return SendErrQueueFull
	}
	return SendOK
}

// Receive takes the oldest message from the inbox of pid.
func (s *System) Receive(pid PID) (Message, bool) {
	p, ok := s.Lookup(pid)
	if !ok {
		return Message{}, false
	}
	return p.Receive()
}

// Drain receives every pending message of pid in FIFO order and calls fn
// for each. It returns the number of messages delivered.
func (s *System) Drain(pid PID, fn func(Message)) int {
	p, ok := s.Lookup(pid)
	if !ok {
		return 0
	}
	n := 0
	for {
		msg, ok := p.Receive()
		if !ok {
			return n
		}
		n++
		if fn != nil {
			fn(msg)
		}
	}
}
