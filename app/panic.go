package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"garden/gardenos/kernel"
	"garden/gardenos/raster"
	"garden/hal"
)

func installPanicHandler(k *kernel.Kernel, h hal.HAL) {
	k.OnPanic(func(info kernel.PanicInfo) {
		lines := []string{
			"Garden panic",
			fmt.Sprintf("task: %d", info.TaskID),
			fmt.Sprintf("panic: %v", info.Value),
		}
		if l := h.Logger(); l != nil {
			for _, line := range lines {
				l.WriteLineString(line)
			}
			for _, line := range strings.Split(string(info.Stack), "\n") {
				if line != "" {
					l.WriteLineString(line)
				}
			}
		}

		disp := h.Display()
		if disp == nil {
			return
		}
		fb := disp.Framebuffer()
		if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
			return
		}

		c := raster.New(fb)
		c.Clear(raster.Paper)
		y := c.LineHeight()
		for _, line := range lines {
			for len(line) > 0 && y <= c.Height() {
				chunk, rest := fitWidth(c, line)
				c.Text(0, y, chunk, raster.Ink)
				y += c.LineHeight()
				line = strings.TrimLeft(rest, " ")
			}
		}
		_ = c.Display()
	})
}

// fitWidth splits s at the longest prefix that fits on one canvas line.
func fitWidth(c *raster.Canvas, s string) (prefix, rest string) {
	n := len(s)
	for n > 1 && ((n < len(s) && !utf8.RuneStart(s[n])) || c.TextWidth(s[:n]) > c.Width()) {
		n--
	}
	return s[:n], s[n:]
}
