package kernel

// PayloadBytes is the fixed payload size of every message. Longer payloads
// are truncated; shorter ones are zero-padded.
const PayloadBytes = 32

// Kind tags what a message is for.
type Kind uint8

const (
	KindCommand Kind = iota
	KindResponse
	KindNotification
)

func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "Command"
	case KindResponse:
		return "Response"
	case KindNotification:
		return "Notification"
	default:
		return "Unknown"
	}
}

// Message is a fixed-size message envelope. It is always copied by value.
type Message struct {
	From PID
	To   PID
	Kind Kind
	Data [PayloadBytes]byte
}

func newMessage(from, to PID, kind Kind, payload []byte) Message {
	msg := Message{From: from, To: to, Kind: kind}
	copy(msg.Data[:], payload)
	return msg
}

// Text returns the payload up to the first NUL, keeping only printable ASCII.
func (m Message) Text() string {
	var buf [PayloadBytes]byte
	n := 0
	for _, b := range m.Data {
		if b == 0 {
			break
		}
		if b >= ' ' && b <= '~' {
			buf[n] = b
			n++
		}
	}
	return string(buf[:n])
}
