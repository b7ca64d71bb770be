package kernel

// Context is handed to Task.Step and is only valid during that call.
type Context struct {
	k    *Kernel
	task TaskID

	blockOn     int
	blockOnTick bool
}

// Recv pops one message from the endpoint behind c. On an empty mailbox
// the task is parked there until the next send; Step should then return.
func (ctx *Context) Recv(c Capability) (Message, bool) {
	msg, ok := ctx.k.recv(c)
	if !ok && c.can(RightRecv) {
		ctx.blockOn = int(c.ep)
		ctx.blockOnTick = false
	}
	return msg, ok
}

// TryRecv pops one message without parking the task.
func (ctx *Context) TryRecv(c Capability) (Message, bool) {
	return ctx.k.recv(c)
}

// BlockOnTick parks the task until the next platform tick.
func (ctx *Context) BlockOnTick() {
	ctx.blockOnTick = true
	ctx.blockOn = -1
}

// Send queues a message on the endpoint behind to.
func (ctx *Context) Send(to Capability, kind uint16, payload []byte) SendResult {
	return ctx.k.send(to, kind, payload, Capability{})
}

// SendCap is Send plus a capability handed to the receiver.
func (ctx *Context) SendCap(to Capability, kind uint16, payload []byte, xfer Capability) SendResult {
	return ctx.k.send(to, kind, payload, xfer)
}

// NowTick returns the last platform tick seen by the kernel.
func (ctx *Context) NowTick() uint64 { return ctx.k.now }
