package watchface

import (
	"garden/gardenos/raster"
)

func (t *Task) redraw() {
	c := t.canvas
	c.Clear(raster.Paper)

	d := t.face.OnRedraw()
	for _, p := range d.Polygons {
		c.FillPolygon(p, raster.Ink)
	}
	for _, s := range d.Segments {
		c.Line(s.A, s.B, raster.Ink)
	}

	t.drawClock()
	_ = c.Display()
	t.dirty = false
}

func (t *Task) drawClock() {
	if !t.haveTime {
		return
	}
	c := t.canvas
	c.FillRect(0, 0, c.Width(), clockBand, raster.Paper)

	s := t.now.String()
	x := (c.Width() - c.TextWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	baseline := clockBand - (clockBand-c.LineHeight()*2/3)/2
	c.Text(x, baseline, s, raster.Ink)
}
