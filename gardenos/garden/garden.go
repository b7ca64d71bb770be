package garden

import "image"

// Display bounds (144x168) and buffer capacities.
const (
	MaxX = 143
	MaxY = 167

	MaxPoints = 60
	MaxShoots = 5

	// MaxWidth is the full outline width of a shoot at its base.
	MaxWidth = 16
)

const (
	driftRange = 11 // dx in [-5, 5]
	driftBias  = 5
	riseRange  = 3 // dy in [1, 3]
)

// Shoot is one growing stem. Points are only ever appended.
type Shoot struct {
	pts [MaxPoints]image.Point
	n   int
}

func (s *Shoot) Len() int { return s.n }

func (s *Shoot) At(i int) image.Point { return s.pts[i] }

// Points returns the valid part of the spine. The slice aliases the shoot.
func (s *Shoot) Points() []image.Point { return s.pts[:s.n] }

func (s *Shoot) Base() image.Point { return s.pts[0] }

func (s *Shoot) Tip() image.Point { return s.pts[s.n-1] }

func (s *Shoot) plant(p image.Point) {
	s.pts[0] = p
	s.n = 1
}

// Config selects one of the compile-time garden variants.
type Config struct {
	// Shoots is the garden capacity, at most MaxShoots.
	Shoots int
	// GrowPerTick is the number of growth events per Step.
	GrowPerTick int
	// TrunkX fixes the trunk's x position; 0 picks it at random.
	TrunkX int
	// RegrowWhenFull restarts a full trunk from the ground instead of
	// dropping further growth.
	RegrowWhenFull bool
	// RegrowX is where a full trunk restarts; 0 reuses the trunk position.
	RegrowX int
}

var (
	Minimal = Config{Shoots: 1, GrowPerTick: 1, TrunkX: 75, RegrowWhenFull: true, RegrowX: 100}
	Full    = Config{Shoots: MaxShoots, GrowPerTick: 6}
)

func (c Config) normalized() Config {
	if c.Shoots < 1 {
		c.Shoots = 1
	}
	if c.Shoots > MaxShoots {
		c.Shoots = MaxShoots
	}
	if c.GrowPerTick < 0 {
		c.GrowPerTick = 0
	}
	if c.TrunkX < 0 || c.TrunkX > MaxX {
		c.TrunkX = 0
	}
	if c.RegrowX < 0 || c.RegrowX > MaxX {
		c.RegrowX = 0
	}
	return c
}

// Stats counts growth events since the last Reset.
type Stats struct {
	Grown    int
	Dropped  int
	Branches int
	Regrown  int
}

// Garden is a fixed-capacity set of shoots. Shoot 0 is the trunk.
type Garden struct {
	cfg    Config
	rng    *Rand
	shoots [MaxShoots]Shoot
	active int
	stats  Stats
}

// New returns a garden that has not been reset yet; call Reset before Step.
func New(cfg Config, rng *Rand) *Garden {
	if rng == nil {
		rng = NewRand()
	}
	return &Garden{cfg: cfg.normalized(), rng: rng}
}

func (g *Garden) Config() Config { return g.cfg }

func (g *Garden) Capacity() int { return g.cfg.Shoots }

func (g *Garden) Active() int { return g.active }

func (g *Garden) Stats() Stats { return g.stats }

// Shoot returns shoot i, or nil if it is not active.
func (g *Garden) Shoot(i int) *Shoot {
	if i < 0 || i >= g.active {
		return nil
	}
	return &g.shoots[i]
}

// Reset clears the garden down to a single trunk on the ground line.
func (g *Garden) Reset() {
	g.shoots[0].plant(image.Point{X: g.trunkX(), Y: MaxY - 1})
	g.active = 1
	g.stats = Stats{}
}

func (g *Garden) trunkX() int {
	if g.cfg.TrunkX > 0 {
		return g.cfg.TrunkX
	}
	return MaxWidth + g.rng.Intn(MaxX-2*MaxWidth+1)
}

// Step applies GrowPerTick growth events.
func (g *Garden) Step() {
	if g.active == 0 {
		return
	}
	for i := 0; i < g.cfg.GrowPerTick; i++ {
		g.growEvent()
	}
}

func (g *Garden) growEvent() {
	// A single-shoot garden always grows the trunk without a draw.
	s := 0
	if g.cfg.Shoots > 1 {
		s = g.rng.Intn(g.cfg.Shoots)
	}
	if s >= g.active {
		if g.active >= g.cfg.Shoots {
			g.stats.Dropped++
			return
		}
		trunk := &g.shoots[0]
		bp := g.rng.Intn(trunk.n)
		// New branches always take the first free slot.
		s = g.active
		g.shoots[s].plant(trunk.pts[bp])
		g.active++
		g.stats.Branches++
	}
	g.grow(&g.shoots[s], s)
}

func (g *Garden) grow(sh *Shoot, idx int) {
	cur := sh.n
	if cur >= MaxPoints {
		if !g.cfg.RegrowWhenFull || idx != 0 {
			g.stats.Dropped++
			return
		}
		x := g.cfg.RegrowX
		if x == 0 {
			x = g.trunkX()
		}
		sh.plant(image.Point{X: x, Y: MaxY - 1})
		cur = 1
		g.stats.Regrown++
	}

	prev := sh.pts[cur-1]
	x := clamp(prev.X+g.rng.Intn(driftRange)-driftBias, 0, MaxX)
	y := prev.Y - (g.rng.Intn(riseRange) + 1)
	if y < 0 {
		y = 0
	}
	sh.pts[cur] = image.Point{X: x, Y: y}
	sh.n = cur + 1
	g.stats.Grown++
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
