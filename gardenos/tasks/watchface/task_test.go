package watchface

import (
	"strings"
	"testing"
	"time"

	"garden/gardenos/garden"
	"garden/gardenos/kernel"
	"garden/gardenos/services/clock"
	"garden/gardenos/services/logger"
	"garden/hal"
)

type memFB struct {
	w, h     int
	buf      []byte
	presents int
}

func (f *memFB) Width() int              { return f.w }
func (f *memFB) Height() int             { return f.h }
func (f *memFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *memFB) StrideBytes() int        { return f.w * 2 }
func (f *memFB) Buffer() []byte          { return f.buf }
func (f *memFB) Present() error          { f.presents++; return nil }

func (f *memFB) ClearRGB(r, g, b uint8) {
	p := hal.RGB565(r, g, b)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = byte(p)
		f.buf[i+1] = byte(p >> 8)
	}
}

type memDisplay struct{ fb *memFB }

func (d memDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type memLogger struct{ lines []string }

func (l *memLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *memLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

type countChime struct{ rings int }

func (c *countChime) Ring() { c.rings++ }

type rig struct {
	k     *kernel.Kernel
	fb    *memFB
	log   *memLogger
	clk   *fakeClock
	chime *countChime
	task  *Task
	seq   uint64
}

func newRig(cfg Config, start time.Time) *rig {
	r := &rig{
		k:     kernel.New(),
		fb:    &memFB{w: hal.DisplayWidth, h: hal.DisplayHeight, buf: make([]byte, hal.DisplayWidth*hal.DisplayHeight*2)},
		log:   &memLogger{},
		clk:   &fakeClock{t: start},
		chime: &countChime{},
	}
	logEP := r.k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	clockEP := r.k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	faceEP := r.k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	r.k.AddTask(logger.New(r.log, logEP.Restrict(kernel.RightRecv)))
	r.k.AddTask(clock.New(r.clk, clockEP.Restrict(kernel.RightRecv)))
	r.task = New(memDisplay{fb: r.fb}, r.chime, cfg, faceEP,
		clockEP.Restrict(kernel.RightSend), logEP.Restrict(kernel.RightSend))
	r.k.AddTask(r.task)
	r.k.Run(100)
	return r
}

func (r *rig) advance(d time.Duration) {
	r.clk.t = r.clk.t.Add(d)
	r.seq++
	r.k.TickTo(r.seq)
	r.k.Run(100)
}

func (r *rig) ink(x, y int) bool {
	return hal.PixelAt(r.fb, x, y) == 0
}

func (r *rig) inkIn(x0, y0, x1, y1 int) int {
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if r.ink(x, y) {
				n++
			}
		}
	}
	return n
}

func (r *rig) logged(substr string) bool {
	for _, l := range r.log.lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func TestStartPlantsAndPaints(t *testing.T) {
	r := newRig(Config{Garden: garden.Full}, time.Date(2024, 5, 17, 9, 30, 10, 0, time.UTC))

	if r.fb.presents == 0 {
		t.Fatal("expected an initial frame")
	}
	base := r.task.Face().Garden().Shoot(0).Base()
	if !r.ink(base.X, base.Y) {
		t.Fatalf("expected trunk base %v to be inked", base)
	}
	if !r.logged("garden: planted trunk at x=") {
		t.Fatalf("expected planting log, got %q", r.log.lines)
	}
}

func TestTickGrowsAndDrawsClock(t *testing.T) {
	r := newRig(Config{Garden: garden.Full}, time.Date(2024, 5, 17, 9, 30, 10, 0, time.UTC))
	before := r.fb.presents

	r.advance(time.Second)

	if r.fb.presents <= before {
		t.Fatal("expected a redraw after the tick")
	}
	if n := r.inkIn(0, 0, hal.DisplayWidth, clockBand); n == 0 {
		t.Fatal("expected clock text in the top band")
	}
	g := r.task.Face().Garden()
	total := 0
	for i := 0; i < g.Active(); i++ {
		total += g.Shoot(i).Len()
	}
	if total < 1+garden.Full.GrowPerTick {
		t.Fatalf("expected growth after one tick, got %d points", total)
	}
}

func TestGrownTrunkKeepsGroundRow(t *testing.T) {
	r := newRig(Config{Garden: garden.Full}, time.Date(2024, 5, 17, 9, 30, 10, 0, time.UTC))

	trunk := r.task.Face().Garden().Shoot(0)
	for i := 0; i < 5 && trunk.Len() < 2; i++ {
		r.advance(time.Second)
	}
	if trunk.Len() < 2 {
		t.Fatalf("expected the trunk to grow, got length %d", trunk.Len())
	}
	base := trunk.Base()
	if !r.ink(base.X, base.Y) {
		t.Fatalf("expected base %v of a %d-point trunk to be inked", base, trunk.Len())
	}
	if !r.ink(base.X, base.Y-1) {
		t.Fatalf("expected the row above base %v to be inked", base)
	}
}

func TestMinuteRolloverResets(t *testing.T) {
	r := newRig(Config{Garden: garden.Full, Chime: true}, time.Date(2024, 5, 17, 9, 30, 50, 0, time.UTC))
	for i := 0; i < 9; i++ {
		r.advance(time.Second)
	}
	g := r.task.Face().Garden()
	if g.Stats().Grown == 0 {
		t.Fatal("expected the garden to grow before the rollover")
	}

	r.advance(time.Second) // 09:31:00

	if !r.logged("garden: 09:31 reset") {
		t.Fatalf("expected reset log, got %q", r.log.lines)
	}
	if r.chime.rings != 1 {
		t.Fatalf("expected one chime, got %d", r.chime.rings)
	}
	if st := g.Stats(); st.Grown+st.Dropped != garden.Full.GrowPerTick {
		t.Fatalf("expected stats for a single tick after reset, got %+v", st)
	}
}

func TestMinimalVariantDrawsSpine(t *testing.T) {
	r := newRig(Config{Garden: garden.Minimal}, time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC))
	for i := 0; i < 5; i++ {
		r.advance(time.Second)
	}
	for _, p := range r.task.Face().Garden().Shoot(0).Points() {
		if !r.ink(p.X, p.Y) {
			t.Fatalf("expected spine point %v to be inked", p)
		}
	}
	if r.chime.rings != 0 {
		t.Fatal("chime disabled but rang")
	}
}
