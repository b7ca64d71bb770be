package kernel

// ring is a fixed-capacity FIFO of messages owned by one endpoint.
type ring struct {
	start int
	n     int
	buf   [mailboxSlots]Message
}

func (r *ring) full() bool { return r.n == len(r.buf) }

func (r *ring) put(msg *Message) bool {
	if r.full() {
		return false
	}
	r.buf[(r.start+r.n)%len(r.buf)] = *msg
	r.n++
	return true
}

func (r *ring) take() (Message, bool) {
	if r.n == 0 {
		return Message{}, false
	}
	msg := r.buf[r.start]
	r.buf[r.start] = Message{}
	r.start = (r.start + 1) % len(r.buf)
	r.n--
	return msg, true
}
