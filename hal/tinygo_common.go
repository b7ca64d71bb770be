//go:build tinygo

package hal

import "time"

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

type tinyGoClock struct{}

func (tinyGoClock) Now() time.Time { return time.Now() }

type silentChime struct{}

func (silentChime) Ring() {}

// memFramebuffer is an RGB565 buffer with a pluggable present hook.
type memFramebuffer struct {
	w       int
	h       int
	stride  int
	buf     []byte
	present func(fb *memFramebuffer) error
}

func newMemFramebuffer(w, h int, present func(fb *memFramebuffer) error) *memFramebuffer {
	stride := w * 2
	return &memFramebuffer{
		w:       w,
		h:       h,
		stride:  stride,
		buf:     make([]byte, stride*h),
		present: present,
	}
}

func (f *memFramebuffer) Width() int          { return f.w }
func (f *memFramebuffer) Height() int         { return f.h }
func (f *memFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int    { return f.stride }
func (f *memFramebuffer) Buffer() []byte      { return f.buf }

func (f *memFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := RGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *memFramebuffer) Present() error {
	if f.present == nil {
		return nil
	}
	return f.present(f)
}
