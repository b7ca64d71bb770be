// Package raster draws garden geometry and text into an RGB565 framebuffer.
package raster

import (
	"image"
	"image/color"

	"garden/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

var (
	Paper = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Ink   = color.RGBA{A: 0xFF}
)

// Canvas adapts a hal.Framebuffer to drivers.Displayer so tinyfont can
// draw on it, and adds the fill primitives the face needs.
type Canvas struct {
	fb   hal.Framebuffer
	font tinyfont.Fonter

	xs []int
}

var _ drivers.Displayer = (*Canvas)(nil)

func New(fb hal.Framebuffer) *Canvas {
	return &Canvas{fb: fb, font: &freemono.Bold9pt7b, xs: make([]int, 0, 32)}
}

func (c *Canvas) Width() int  { return c.fb.Width() }
func (c *Canvas) Height() int { return c.fb.Height() }

func (c *Canvas) Size() (x, y int16) {
	return int16(c.fb.Width()), int16(c.fb.Height())
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.set(int(x), int(y), hal.RGB565(col.R, col.G, col.B))
}

// Display presents the frame.
func (c *Canvas) Display() error { return c.fb.Present() }

func (c *Canvas) Clear(col color.RGBA) {
	c.fb.ClearRGB(col.R, col.G, col.B)
}

func (c *Canvas) set(x, y int, pixel uint16) {
	if c.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := c.fb.Buffer()
	if x < 0 || x >= c.fb.Width() || y < 0 || y >= c.fb.Height() {
		return
	}
	off := y*c.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (c *Canvas) hline(x0, x1, y int, pixel uint16) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y < 0 || y >= c.fb.Height() {
		return
	}
	x0 = clampInt(x0, 0, c.fb.Width()-1)
	x1 = clampInt(x1, 0, c.fb.Width()-1)
	for x := x0; x <= x1; x++ {
		c.set(x, y, pixel)
	}
}

// FillRect fills the w x h rectangle at (x, y), clipped to the framebuffer.
func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	pixel := hal.RGB565(col.R, col.G, col.B)
	for py := y; py < y+h; py++ {
		c.hline(x, x+w-1, py, pixel)
	}
}

// Line draws a one-pixel Bresenham line from a to b inclusive.
func (c *Canvas) Line(a, b image.Point, col color.RGBA) {
	c.line(a, b, hal.RGB565(col.R, col.G, col.B))
}

func (c *Canvas) line(a, b image.Point, pixel uint16) {
	dx := absInt(b.X - a.X)
	dy := -absInt(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	x, y := a.X, a.Y
	for {
		c.set(x, y, pixel)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// FillPolygon fills a closed polygon using the even-odd rule, sampling
// each row at its pixel center, then strokes its edges so the boundary
// rows and columns are inked too. Polygons with no height degrade to a
// horizontal span so a freshly planted shoot still shows.
func (c *Canvas) FillPolygon(pts []image.Point, col color.RGBA) {
	if len(pts) == 0 {
		return
	}
	pixel := hal.RGB565(col.R, col.G, col.B)

	minY, maxY := pts[0].Y, pts[0].Y
	minX, maxX := pts[0].X, pts[0].X
	for _, p := range pts[1:] {
		minY = minInt(minY, p.Y)
		maxY = maxInt(maxY, p.Y)
		minX = minInt(minX, p.X)
		maxX = maxInt(maxX, p.X)
	}
	if minY == maxY {
		c.hline(minX, maxX, minY, pixel)
		return
	}

	minY = maxInt(minY, 0)
	maxY = minInt(maxY, c.fb.Height()-1)
	for y := minY; y <= maxY; y++ {
		xs := c.xs[:0]
		// Row center in half-pixel units.
		cy := 2*y + 1
		for i := range pts {
			p := pts[i]
			q := pts[(i+1)%len(pts)]
			y0, y1 := 2*p.Y, 2*q.Y
			if (y0 <= cy) == (y1 <= cy) {
				continue
			}
			x := p.X + (cy-y0)*(q.X-p.X)/(y1-y0)
			xs = insertSorted(xs, x)
		}
		for i := 0; i+1 < len(xs); i += 2 {
			c.hline(xs[i], xs[i+1], y, pixel)
		}
		c.xs = xs
	}
	for i := range pts {
		c.line(pts[i], pts[(i+1)%len(pts)], pixel)
	}
}

// Text draws s with its baseline at y.
func (c *Canvas) Text(x, y int, s string, col color.RGBA) {
	tinyfont.WriteLine(c, c.font, int16(x), int16(y), s, col)
}

// TextWidth returns the advance width of s in pixels.
func (c *Canvas) TextWidth(s string) int {
	_, outbox := tinyfont.LineWidth(c.font, s)
	return int(outbox)
}

// LineHeight returns the font's line advance in pixels.
func (c *Canvas) LineHeight() int {
	return int(c.font.GetYAdvance())
}

func insertSorted(xs []int, x int) []int {
	xs = append(xs, x)
	for i := len(xs) - 1; i > 0 && xs[i-1] > xs[i]; i-- {
		xs[i-1], xs[i] = xs[i], xs[i-1]
	}
	return xs
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
