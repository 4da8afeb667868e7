package kernel

// MailboxSlots is the inbox capacity of every process.
const MailboxSlots = 10

// mailbox is a bounded FIFO over a fixed array. head is the slot of the
// oldest message and stays in [0, MailboxSlots); count is the number of
// queued messages. Push and pop are O(1) and never allocate.
type mailbox struct {
	head  uint8
	count uint8
	slots [MailboxSlots]Message
}

func (mb *mailbox) len() int {
	return int(mb.count)
}

func (mb *mailbox) push(msg Message) bool {
	if mb.count >= MailboxSlots {
		return false
	}
	mb.slots[(int(mb.head)+int(mb.count))%MailboxSlots] = msg
	mb.count++
	return true
}

func (mb *mailbox) pop() (Message, bool) {
	if mb.count == 0 {
		return Message{}, false
	}
	msg := mb.slots[mb.head]
	mb.slots[mb.head] = Message{}
	mb.head = (mb.head + 1) % MailboxSlots
	mb.count--
	return msg, true
}
