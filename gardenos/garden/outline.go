package garden

import "image"

const halfWidth = MaxWidth / 2

// Polygon is a closed outline; the last point connects back to the first.
type Polygon []image.Point

// Segment is one line of a bare spine.
type Segment struct {
	A, B image.Point
}

// Renderer turns shoot spines into drawable geometry. All buffers are
// allocated up front; returned slices are only valid until the next call.
type Renderer struct {
	outlines [MaxShoots][2 * MaxPoints]image.Point
	polys    [MaxShoots]Polygon
	segs     [MaxShoots * (MaxPoints - 1)]Segment
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// taper returns the half-width of the outline at spine index i of n.
// It narrows linearly from the base and never drops below 2px.
func taper(i, n int) int {
	return halfWidth - (i*halfWidth)/n + 2
}

// Outline appends the tapered outline of s to dst: the left side from
// base to tip, then the right side from tip back to base.
func Outline(dst []image.Point, s *Shoot) []image.Point {
	n := s.n
	for i := 0; i < n; i++ {
		p := s.pts[i]
		dst = append(dst, image.Point{X: p.X - taper(i, n), Y: p.Y})
	}
	for i := n - 1; i >= 0; i-- {
		p := s.pts[i]
		dst = append(dst, image.Point{X: p.X + taper(i, n), Y: p.Y})
	}
	return dst
}

// Polygons returns one filled outline per active shoot.
func (r *Renderer) Polygons(g *Garden) []Polygon {
	polys := r.polys[:0]
	for i := 0; i < g.active; i++ {
		out := Outline(r.outlines[i][:0], &g.shoots[i])
		polys = append(polys, Polygon(out))
	}
	return polys
}

// Segments returns the spines of all active shoots as line segments.
func (r *Renderer) Segments(g *Garden) []Segment {
	segs := r.segs[:0]
	for i := 0; i < g.active; i++ {
		sh := &g.shoots[i]
		for j := 1; j < sh.n; j++ {
			segs = append(segs, Segment{A: sh.pts[j-1], B: sh.pts[j]})
		}
	}
	return segs
}
