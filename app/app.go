package app

import (
	"errors"
	"fmt"

	"garden/gardenos/garden"
	"garden/gardenos/kernel"
	"garden/gardenos/services/clock"
	"garden/gardenos/services/logger"
	"garden/gardenos/tasks/watchface"
	"garden/hal"
	"garden/internal/buildinfo"
)

// ErrPanic is returned by the step function once a task has panicked.
var ErrPanic = errors.New("garden: task panic")

const defaultStepBudget = 64

type Config struct {
	// Variant is "full" (five tapered shoots) or "minimal" (one bare spine).
	Variant string
	Chime   bool
	// StepBudget caps task steps per host frame.
	StepBudget int
}

// Variant maps a variant name to its garden preset.
func Variant(name string) (garden.Config, error) {
	switch name {
	case "", "full":
		return garden.Full, nil
	case "minimal":
		return garden.Minimal, nil
	default:
		return garden.Config{}, fmt.Errorf("unknown variant %q (want full or minimal)", name)
	}
}

type system struct {
	k      *kernel.Kernel
	ticks  <-chan uint64
	budget int
	face   *watchface.Task
}

// New wires the kernel, services and watch face onto h and returns the
// per-frame step function. An unknown variant falls back to "full".
func New(h hal.HAL, cfg Config) func() error {
	s := newSystem(h, cfg)
	return s.step
}

// Run starts the watch and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL, cfg Config) {
	step := New(h, cfg)
	for {
		if err := step(); err != nil {
			if l := h.Logger(); l != nil {
				l.WriteLineString(err.Error())
			}
			select {}
		}
	}
}

func newSystem(h hal.HAL, cfg Config) *system {
	if l := h.Logger(); l != nil {
		l.WriteLineString(buildinfo.Banner())
	}
	gcfg, err := Variant(cfg.Variant)
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString("garden: " + err.Error())
		}
		gcfg = garden.Full
	}
	if cfg.StepBudget <= 0 {
		cfg.StepBudget = defaultStepBudget
	}

	k := kernel.New()
	installPanicHandler(k, h)

	logEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	clockEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	faceEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	k.AddTask(logger.New(h.Logger(), logEP.Restrict(kernel.RightRecv)))
	k.AddTask(clock.New(h.Clock(), clockEP.Restrict(kernel.RightRecv)))

	face := watchface.New(h.Display(), h.Chime(), watchface.Config{Garden: gcfg, Chime: cfg.Chime},
		faceEP, clockEP.Restrict(kernel.RightSend), logEP.Restrict(kernel.RightSend))
	k.AddTask(face)

	s := &system{k: k, budget: cfg.StepBudget, face: face}
	if ht := h.Time(); ht != nil {
		s.ticks = ht.Ticks()
	}
	return s
}

func (s *system) step() error {
	s.drainTicks()
	s.k.Run(s.budget)
	if s.k.Panicked() {
		return ErrPanic
	}
	return nil
}

func (s *system) drainTicks() {
	if s.ticks == nil {
		return
	}
	for {
		select {
		case seq := <-s.ticks:
			s.k.TickTo(seq)
		default:
			return
		}
	}
}
