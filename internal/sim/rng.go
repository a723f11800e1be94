package sim

import "math/rand"

// Source supplies uniform draws in [0,1). Implementations are not required
// to be safe for concurrent use; give each worker its own Source.
type Source interface {
	Float64() float64
}

type randSource struct {
	r *rand.Rand
}

// NewSource returns a seeded math/rand backed Source.
func NewSource(seed int64) Source {
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Float64() float64 {
	return s.r.Float64()
}

// CoinFlip resolves one biased coin toss against src: a win when the draw
// lands at or below p.
func CoinFlip(src Source, p float64) bool {
	return src.Float64() <= p
}
