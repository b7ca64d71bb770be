package garden

// Drawing is the geometry for one redraw. Only one of the two is set,
// depending on the variant.
type Drawing struct {
	Polygons []Polygon
	Segments []Segment
}

// Face holds all watch-face state: generator, garden and renderer.
// It is not safe for concurrent use; hosts call it from one loop.
type Face struct {
	rng      *Rand
	garden   *Garden
	renderer *Renderer
	lines    bool
}

// NewFace builds a face for cfg. The minimal variant (one shoot) draws
// bare spines, every other variant draws tapered outlines.
func NewFace(cfg Config) *Face {
	rng := NewRand()
	g := New(cfg, rng)
	return &Face{
		rng:      rng,
		garden:   g,
		renderer: NewRenderer(),
		lines:    g.Capacity() == 1,
	}
}

func (f *Face) Garden() *Garden { return f.garden }

func (f *Face) OnInit() {
	f.garden.Reset()
}

// OnTick resets the garden on a minute boundary, then grows it.
// It reports whether a redraw is needed, which is always the case.
func (f *Face) OnTick(minuteCrossed bool) bool {
	if minuteCrossed {
		f.garden.Reset()
	}
	f.garden.Step()
	return true
}

func (f *Face) OnRedraw() Drawing {
	if f.lines {
		return Drawing{Segments: f.renderer.Segments(f.garden)}
	}
	return Drawing{Polygons: f.renderer.Polygons(f.garden)}
}
