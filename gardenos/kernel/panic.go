package kernel

// PanicInfo describes a task that panicked inside Step.
type PanicInfo struct {
	TaskID TaskID
	Value  any
	Stack  []byte
}

// OnPanic installs the handler called for the first task panic.
// The handler must not panic.
func (k *Kernel) OnPanic(fn func(PanicInfo)) {
	k.onPanic = fn
}

// Panicked reports whether any task has panicked.
func (k *Kernel) Panicked() bool {
	return k.panicked
}

func (k *Kernel) taskPanicked(id TaskID, v any) {
	first := !k.panicked
	k.panicked = true
	if first && k.onPanic != nil {
		k.onPanic(PanicInfo{TaskID: id, Value: v, Stack: captureStack()})
	}
}
