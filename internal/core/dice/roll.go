// Package dice implements the dice primitives used by attribute distributions.
package dice

import (
	"errors"

	"github.com/louisbranch/gamedata/internal/random"
)

// ErrInvalidDiceSpec indicates a die specification has invalid fields.
var ErrInvalidDiceSpec = errors.New("dice must have positive sides and count")

// Spec describes a die to roll and how many times to roll it.
type Spec struct {
	Count int
	Sides int
}

// Valid reports whether the spec can be rolled.
func (s Spec) Valid() bool {
	return s.Count > 0 && s.Sides > 0
}

// Sum rolls count dice with the given number of sides and returns the total.
// Invalid specs roll to 0; callers validate with Spec.Valid beforehand.
func Sum(src random.Source, count, sides int) int {
	if !(Spec{Count: count, Sides: sides}).Valid() {
		return 0
	}
	src = random.Or(src)
	total := 0
	for i := 0; i < count; i++ {
		total += rollDie(src, sides)
	}
	return total
}

// Range returns one uniform draw in [low, high]. Swapped bounds are normalized.
func Range(src random.Source, low, high int) int {
	if low > high {
		low, high = high, low
	}
	return low + random.Or(src).IntN(high-low+1)
}

// OneIn reports success with probability 1/chance. The chance may be
// fractional; chance <= 1 always succeeds.
func OneIn(src random.Source, chance float64) bool {
	if chance <= 1 {
		return true
	}
	return random.Or(src).Float64()*chance < 1
}

// rollDie rolls a single die with the provided number of sides.
func rollDie(src random.Source, sides int) int {
	return src.IntN(sides) + 1
}
