package garden

import (
	"image"
	"testing"
)

func TestOutlineSinglePoint(t *testing.T) {
	var s Shoot
	s.plant(image.Point{X: 50, Y: MaxY - 1})
	out := Outline(nil, &s)
	if len(out) != 2 {
		t.Fatalf("expected 2 points, got %d", len(out))
	}
	w := halfWidth + 2
	if out[0] != (image.Point{X: 50 - w, Y: MaxY - 1}) || out[1] != (image.Point{X: 50 + w, Y: MaxY - 1}) {
		t.Fatalf("unexpected degenerate outline %v", out)
	}
}

func TestOutlineTapers(t *testing.T) {
	var s Shoot
	s.plant(image.Point{X: 70, Y: 160})
	for i := 1; i < 40; i++ {
		s.pts[i] = image.Point{X: 70, Y: 160 - i}
	}
	s.n = 40

	out := Outline(nil, &s)
	if len(out) != 80 {
		t.Fatalf("expected 80 points, got %d", len(out))
	}
	prev := 1 << 30
	for i := 0; i < s.n; i++ {
		left := out[i]
		right := out[len(out)-1-i]
		if left.Y != s.pts[i].Y || right.Y != s.pts[i].Y {
			t.Fatalf("index %d: outline y does not follow spine", i)
		}
		w := right.X - left.X
		if w > prev {
			t.Fatalf("index %d: width %d wider than %d below it", i, w, prev)
		}
		if w < 4 {
			t.Fatalf("index %d: width %d below 2px margin", i, w)
		}
		prev = w
	}
	if base := out[len(out)-1].X - out[0].X; base != 2*(halfWidth+2) {
		t.Fatalf("expected base width %d, got %d", 2*(halfWidth+2), base)
	}
}

func TestPolygonsOnePerShoot(t *testing.T) {
	g := New(Full, NewRand())
	g.Reset()
	for i := 0; i < 10; i++ {
		g.Step()
	}
	r := NewRenderer()
	polys := r.Polygons(g)
	if len(polys) != g.Active() {
		t.Fatalf("expected %d polygons, got %d", g.Active(), len(polys))
	}
	for i, p := range polys {
		if len(p) != 2*g.Shoot(i).Len() {
			t.Fatalf("polygon %d: expected %d points, got %d", i, 2*g.Shoot(i).Len(), len(p))
		}
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	g := New(Full, NewRand())
	g.Reset()
	for i := 0; i < 5; i++ {
		g.Step()
	}
	shoots, active := g.shoots, g.active
	r := NewRenderer()
	_ = r.Polygons(g)
	_ = r.Segments(g)
	if g.shoots != shoots || g.active != active {
		t.Fatal("render mutated the garden")
	}
}

func TestSegmentsFollowSpine(t *testing.T) {
	g := New(Minimal, NewRand())
	g.Reset()
	for i := 0; i < 5; i++ {
		g.Step()
	}
	segs := NewRenderer().Segments(g)
	if len(segs) != 5 {
		t.Fatalf("expected 5 segments, got %d", len(segs))
	}
	pts := g.Shoot(0).Points()
	for i, s := range segs {
		if s.A != pts[i] || s.B != pts[i+1] {
			t.Fatalf("segment %d: %v does not join %v and %v", i, s, pts[i], pts[i+1])
		}
	}
}

func TestRendererDoesNotAllocate(t *testing.T) {
	g := New(Full, NewRand())
	g.Reset()
	for i := 0; i < 30; i++ {
		g.Step()
	}
	r := NewRenderer()
	allocs := testing.AllocsPerRun(100, func() {
		_ = r.Polygons(g)
		_ = r.Segments(g)
		g.Step()
	})
	if allocs != 0 {
		t.Fatalf("expected no allocations, got %v", allocs)
	}
}
