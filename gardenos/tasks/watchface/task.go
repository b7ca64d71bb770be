// Package watchface hosts the garden on the watch display: it feeds clock
// ticks into garden.Face and paints the result with a digital clock.
package watchface

import (
	clockclient "garden/gardenos/client/clock"
	logclient "garden/gardenos/client/logger"
	"garden/gardenos/garden"
	"garden/gardenos/kernel"
	"garden/gardenos/proto"
	"garden/gardenos/raster"
	"garden/hal"
)

// clockBand is the height of the strip at the top reserved for the time.
const clockBand = 22

type Config struct {
	Garden garden.Config
	// Chime rings on every minute reset.
	Chime bool
}

type Task struct {
	disp  hal.Display
	chime hal.Chime
	cfg   Config

	ep       kernel.Capability
	clockCap kernel.Capability
	logCap   kernel.Capability

	face   *garden.Face
	canvas *raster.Canvas

	started    bool
	subscribed bool
	now        proto.ClockTick
	haveTime   bool
	dirty      bool
}

// New returns the watch face task. ep must carry send and receive rights;
// the send half is handed to the clock service for replies.
func New(disp hal.Display, chime hal.Chime, cfg Config, ep, clockCap, logCap kernel.Capability) *Task {
	return &Task{
		disp:     disp,
		chime:    chime,
		cfg:      cfg,
		ep:       ep,
		clockCap: clockCap,
		logCap:   logCap,
		face:     garden.NewFace(cfg.Garden),
	}
}

// Face exposes the simulation state (read-only use).
func (t *Task) Face() *garden.Face { return t.face }

func (t *Task) Step(ctx *kernel.Context) {
	if !t.started {
		if !t.start(ctx) {
			return
		}
	}
	if !t.subscribed {
		switch res := clockclient.Subscribe(ctx, t.clockCap, t.ep.Restrict(kernel.RightSend)); res {
		case kernel.SendOK:
			t.subscribed = true
		case kernel.SendErrQueueFull:
			ctx.BlockOnTick()
			return
		default:
			logclient.Warnf(ctx, t.logCap, "garden: clock subscribe: %s", res)
			ctx.BlockOnTick()
			return
		}
	}

	for {
		msg, ok := ctx.Recv(t.ep.Restrict(kernel.RightRecv))
		if !ok {
			break
		}
		t.handle(ctx, msg)
	}
	if t.dirty {
		t.redraw()
	}
}

func (t *Task) start(ctx *kernel.Context) bool {
	var fb hal.Framebuffer
	if t.disp != nil {
		fb = t.disp.Framebuffer()
	}
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		logclient.Warnf(ctx, t.logCap, "garden: no RGB565 framebuffer")
		ctx.BlockOnTick()
		return false
	}
	t.canvas = raster.New(fb)
	t.face.OnInit()
	t.started = true
	t.dirty = true

	g := t.face.Garden()
	logclient.Logf(ctx, t.logCap, "garden: planted trunk at x=%d (%d shoots max)", g.Shoot(0).Base().X, g.Capacity())
	return true
}

func (t *Task) handle(ctx *kernel.Context, msg kernel.Message) {
	switch proto.Kind(msg.Kind) {
	case proto.MsgClockTick:
		tick, ok := proto.DecodeClockTickPayload(msg.Payload())
		if !ok {
			return
		}
		t.now = tick
		t.haveTime = true
		if tick.MinuteCrossed {
			t.minuteReset(ctx)
		}
		if t.face.OnTick(tick.MinuteCrossed) {
			t.dirty = true
		}

	case proto.MsgError:
		code, ref, _, ok := proto.DecodeErrorPayload(msg.Payload())
		if !ok {
			return
		}
		logclient.Warnf(ctx, t.logCap, "garden: %s error: %s", ref, code)
	}
}

func (t *Task) minuteReset(ctx *kernel.Context) {
	g := t.face.Garden()
	st := g.Stats()
	logclient.Logf(ctx, t.logCap, "garden: %02d:%02d reset shoots=%d grown=%d dropped=%d",
		t.now.Hour, t.now.Minute, g.Active(), st.Grown, st.Dropped)
	if t.cfg.Chime && t.chime != nil {
		t.chime.Ring()
	}
}
