package random

import "math/rand/v2"

// Source produces uniform random values.
//
// *rand.Rand from math/rand/v2 satisfies Source.
type Source interface {
	// IntN returns a value in [0, n). It panics when n <= 0.
	IntN(n int) int
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

type globalSource struct{}

func (globalSource) IntN(n int) int   { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// Default returns the process-wide source backed by the math/rand/v2 top-level
// functions. It is safe for concurrent use.
func Default() Source {
	return globalSource{}
}

// New returns a deterministic source for seed. The same seed always yields the
// same sequence. The returned source is not safe for concurrent use.
func New(seed int64) Source {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Or returns src, or Default when src is nil.
func Or(src Source) Source {
	if src == nil {
		return Default()
	}
	return src
}
