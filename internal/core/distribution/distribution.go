// Package distribution builds composable random values.
//
// A Distribution is an immutable description of how to draw a number: a
// constant, a one-in-N chance, a dice roll, a uniform range, or the sum of two
// other distributions. Roll draws a fresh sample on every call and never
// changes the distribution, so one value can be shared by any number of
// readers as long as each brings its own random source.
package distribution

import (
	"fmt"
	"strconv"

	"github.com/louisbranch/gamedata/internal/core/dice"
	apperrors "github.com/louisbranch/gamedata/internal/platform/errors"
	"github.com/louisbranch/gamedata/internal/random"
)

// Kind identifies the shape of a distribution.
type Kind int

const (
	KindZero Kind = iota
	KindConstant
	KindOneIn
	KindDice
	KindRange
	KindSum
)

func (k Kind) String() string {
	switch k {
	case KindZero:
		return "zero"
	case KindConstant:
		return "constant"
	case KindOneIn:
		return "one_in"
	case KindDice:
		return "dice"
	case KindRange:
		return "rng"
	case KindSum:
		return "sum"
	default:
		return "unknown"
	}
}

// Distribution is a deferred random value. The zero value always rolls 0.
type Distribution struct {
	kind  Kind
	value float64 // constant value or one-in chance
	a, b  int     // dice count/sides or range low/high
	left  *Distribution
	right *Distribution
}

// Zero returns the distribution that always rolls 0.
func Zero() Distribution {
	return Distribution{}
}

// Constant returns a distribution that always rolls v.
func Constant(v float64) Distribution {
	return Distribution{kind: KindConstant, value: v}
}

// OneIn returns a distribution that rolls 1 with probability 1/chance and 0
// otherwise. A chance of 1 or less is rejected: the zero distribution is
// returned together with a non-fatal error for the caller to report.
func OneIn(chance float64) (Distribution, error) {
	if chance <= 1 {
		return Zero(), apperrors.New(
			apperrors.CodeDistributionInvalidParameter,
			fmt.Sprintf("Invalid one_in: %.2f", chance),
		)
	}
	return Distribution{kind: KindOneIn, value: chance}, nil
}

// Dice returns a distribution that rolls count dice with the given sides and
// sums them. Non-positive count or sides return the zero distribution and a
// non-fatal error.
func Dice(count, sides int) (Distribution, error) {
	if !(dice.Spec{Count: count, Sides: sides}).Valid() {
		return Zero(), apperrors.Wrap(
			apperrors.CodeDistributionInvalidParameter,
			fmt.Sprintf("Invalid dice: %d count, %d sides", count, sides),
			dice.ErrInvalidDiceSpec,
		)
	}
	return Distribution{kind: KindDice, a: count, b: sides}, nil
}

// Range returns a distribution that rolls one uniform integer in [low, high].
func Range(low, high int) Distribution {
	if low > high {
		low, high = high, low
	}
	return Distribution{kind: KindRange, a: low, b: high}
}

// Sum returns a distribution whose roll is a.Roll() + b.Roll(), each operand
// sampled independently per call.
func Sum(a, b Distribution) Distribution {
	if a.kind == KindZero {
		return b
	}
	if b.kind == KindZero {
		return a
	}
	left, right := a, b
	return Distribution{kind: KindSum, left: &left, right: &right}
}

// Add is Sum(d, other).
func (d Distribution) Add(other Distribution) Distribution {
	return Sum(d, other)
}

// Kind returns the shape of d.
func (d Distribution) Kind() Kind {
	return d.kind
}

// Roll draws one sample. A nil source uses random.Default.
func (d Distribution) Roll(src random.Source) float64 {
	return d.roll(random.Or(src))
}

func (d Distribution) roll(src random.Source) float64 {
	switch d.kind {
	case KindConstant:
		return d.value
	case KindOneIn:
		if dice.OneIn(src, d.value) {
			return 1
		}
		return 0
	case KindDice:
		return float64(dice.Sum(src, d.a, d.b))
	case KindRange:
		return float64(dice.Range(src, d.a, d.b))
	case KindSum:
		return d.left.roll(src) + d.right.roll(src)
	default:
		return 0
	}
}

// Bounds returns the smallest and largest value Roll can produce.
func (d Distribution) Bounds() (float64, float64) {
	switch d.kind {
	case KindConstant:
		return d.value, d.value
	case KindOneIn:
		return 0, 1
	case KindDice:
		return float64(d.a), float64(d.a * d.b)
	case KindRange:
		return float64(d.a), float64(d.b)
	case KindSum:
		lmin, lmax := d.left.Bounds()
		rmin, rmax := d.right.Bounds()
		return lmin + rmin, lmax + rmax
	default:
		return 0, 0
	}
}

// String renders the shape, e.g. "2d6+1", "1in4" or "rng(1,5)".
func (d Distribution) String() string {
	switch d.kind {
	case KindConstant:
		return strconv.FormatFloat(d.value, 'g', -1, 64)
	case KindOneIn:
		return "1in" + strconv.FormatFloat(d.value, 'g', -1, 64)
	case KindDice:
		return fmt.Sprintf("%dd%d", d.a, d.b)
	case KindRange:
		return fmt.Sprintf("rng(%d,%d)", d.a, d.b)
	case KindSum:
		right := d.right.String()
		if len(right) > 0 && right[0] == '-' {
			return d.left.String() + right
		}
		return d.left.String() + "+" + right
	default:
		return "0"
	}
}
