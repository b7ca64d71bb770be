package garden

const defaultSeed = 100

// Rand is the congruential generator that drives growth.
//
// It is never reseeded from the environment: every run grows the same garden.
type Rand struct {
	seed int64
}

func NewRand() *Rand {
	return &Rand{seed: defaultSeed}
}

func NewRandSeed(seed int64) *Rand {
	return &Rand{seed: seed}
}

// Seed returns the current generator state.
func (r *Rand) Seed() int64 { return r.seed }

// Intn returns a value in [0, max). It returns 0 without advancing for max <= 0.
func (r *Rand) Intn(max int) int {
	if max <= 0 {
		return 0
	}
	r.seed = ((r.seed*214013 + 2531011) >> 16) & 32767
	return int(r.seed % int64(max))
}
