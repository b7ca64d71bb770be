// Package kernel is a single-goroutine cooperative scheduler with
// capability-guarded mailboxes.
package kernel

const (
	maxTasks     = 16
	maxEndpoints = 32
	mailboxSlots = 8

	// MaxMessageBytes bounds the payload carried by one Message.
	MaxMessageBytes = 64
)

type TaskID uint8

// Rights is the set of operations a Capability permits.
type Rights uint8

const (
	RightSend Rights = 1 << iota
	RightRecv
)

type endpointID uint8

// Capability names an endpoint plus the rights its holder has on it.
// The zero value grants nothing.
type Capability struct {
	ep     endpointID
	rights Rights
}

func (c Capability) Valid() bool { return c.rights != 0 }

func (c Capability) can(r Rights) bool { return c.rights&r == r && r != 0 }

// Restrict drops every right not in rights.
func (c Capability) Restrict(rights Rights) Capability {
	r := c.rights & rights
	if r == 0 {
		return Capability{}
	}
	return Capability{ep: c.ep, rights: r}
}

// Message is the fixed-size envelope queued on an endpoint.
type Message struct {
	Kind uint16
	Len  uint16
	Data [MaxMessageBytes]byte
	// Cap is an optional capability handed to the receiver.
	Cap Capability
}

// Payload returns the valid part of Data.
func (m *Message) Payload() []byte {
	return m.Data[:min(int(m.Len), MaxMessageBytes)]
}

// SendResult describes the outcome of a send attempt.
type SendResult uint8

const (
	SendOK SendResult = iota
	SendErrBadCap
	SendErrNoEndpoint
	SendErrTooLarge
	SendErrQueueFull
)

func (r SendResult) String() string {
	switch r {
	case SendOK:
		return "ok"
	case SendErrBadCap:
		return "capability lacks send right"
	case SendErrNoEndpoint:
		return "no such endpoint"
	case SendErrTooLarge:
		return "payload too large"
	case SendErrQueueFull:
		return "queue full"
	}
	return "unknown"
}

// Task is a cooperative unit of execution.
//
// Step must return promptly. A task waits by calling Context.Recv on an
// empty mailbox or Context.BlockOnTick and then returning.
type Task interface {
	Step(*Context)
}

type endpoint struct {
	q       ring
	waiters uint32
}

type taskSlot struct {
	task     Task
	runnable bool
	dead     bool
}

// Kernel owns tasks and endpoints. It is not safe for concurrent use.
type Kernel struct {
	eps  [maxEndpoints]endpoint
	neps int

	tasks  [maxTasks]taskSlot
	ntasks int
	next   int

	now         uint64
	tickWaiters uint32

	panicked bool
	onPanic  func(PanicInfo)
}

func New() *Kernel {
	return &Kernel{}
}

// NewEndpoint allocates an endpoint. It returns the zero Capability once
// the endpoint table is exhausted.
func (k *Kernel) NewEndpoint(rights Rights) Capability {
	if k.neps >= maxEndpoints {
		return Capability{}
	}
	id := endpointID(k.neps)
	k.neps++
	return Capability{ep: id, rights: rights}
}

// AddTask registers t as runnable.
func (k *Kernel) AddTask(t Task) (TaskID, bool) {
	if k.ntasks >= maxTasks {
		return 0, false
	}
	id := k.ntasks
	k.ntasks++
	k.tasks[id] = taskSlot{task: t, runnable: true}
	return TaskID(id), true
}

// Step runs the next runnable task once, round-robin. It reports whether
// any task ran.
func (k *Kernel) Step() bool {
	for i := 0; i < k.ntasks; i++ {
		id := (k.next + i) % k.ntasks
		slot := &k.tasks[id]
		if !slot.runnable || slot.dead {
			continue
		}
		k.next = (id + 1) % k.ntasks

		ctx := Context{k: k, task: TaskID(id), blockOn: -1}
		if !k.runStep(slot, &ctx) {
			slot.dead = true
			slot.runnable = false
			return true
		}
		switch {
		case ctx.blockOnTick:
			slot.runnable = false
			k.tickWaiters |= 1 << id
		case ctx.blockOn >= 0:
			slot.runnable = false
			k.eps[ctx.blockOn].waiters |= 1 << id
		}
		return true
	}
	return false
}

// Run steps tasks until none is runnable or budget steps have run.
func (k *Kernel) Run(budget int) int {
	n := 0
	for n < budget && k.Step() {
		n++
	}
	return n
}

func (k *Kernel) runStep(slot *taskSlot, ctx *Context) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			k.taskPanicked(ctx.task, r)
			ok = false
		}
	}()
	slot.task.Step(ctx)
	return true
}

// Tick wakes every task parked in BlockOnTick.
func (k *Kernel) Tick() {
	k.wake(k.tickWaiters)
	k.tickWaiters = 0
}

// TickTo records the platform tick counter and calls Tick if it advanced.
func (k *Kernel) TickTo(seq uint64) {
	if seq <= k.now {
		return
	}
	k.now = seq
	k.Tick()
}

func (k *Kernel) wake(mask uint32) {
	for id := 0; mask != 0 && id < k.ntasks; id++ {
		if mask&(1<<id) != 0 && !k.tasks[id].dead {
			k.tasks[id].runnable = true
		}
		mask &^= 1 << id
	}
}

func (k *Kernel) send(to Capability, kind uint16, payload []byte, xfer Capability) SendResult {
	if !to.can(RightSend) {
		return SendErrBadCap
	}
	if int(to.ep) >= k.neps {
		return SendErrNoEndpoint
	}
	if len(payload) > MaxMessageBytes {
		return SendErrTooLarge
	}

	msg := Message{Kind: kind, Len: uint16(len(payload)), Cap: xfer}
	copy(msg.Data[:], payload)

	ep := &k.eps[to.ep]
	if !ep.q.put(&msg) {
		return SendErrQueueFull
	}
	k.wake(ep.waiters)
	ep.waiters = 0
	return SendOK
}

func (k *Kernel) recv(from Capability) (Message, bool) {
	if !from.can(RightRecv) || int(from.ep) >= k.neps {
		return Message{}, false
	}
	return k.eps[from.ep].q.take()
}
