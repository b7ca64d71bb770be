//go:build tinygo && !baremetal

package hal

type tinyGoHostHAL struct {
	logger tinyGoHostLogger
	fb     *memFramebuffer
	t      *tinyGoTime
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU pin mapping.
func New() HAL {
	return &tinyGoHostHAL{
		fb: newMemFramebuffer(DisplayWidth, DisplayHeight, nil),
		t:  newTinyGoTime(),
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHostHAL) Time() Time       { return h.t }
func (h *tinyGoHostHAL) Clock() Clock     { return tinyGoClock{} }
func (h *tinyGoHostHAL) Chime() Chime     { return silentChime{} }

type tinyGoHostLogger struct{}

func (tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}
