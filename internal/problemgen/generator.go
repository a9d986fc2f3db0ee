package problemgen

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// Generator produces one exercise per call.
type Generator interface {
	Generate() Exercise
}

// RandomGenerator draws exercises from an injected random source. The
// sequence of exercises is fully determined by that source.
type RandomGenerator struct {
	rng *rand.Rand
	cfg Config
}

var _ Generator = (*RandomGenerator)(nil)

// New creates a RandomGenerator. rng must not be nil.
func New(rng *rand.Rand, cfg Config) *RandomGenerator {
	return &RandomGenerator{rng: rng, cfg: cfg}
}

// NewSeeded creates a RandomGenerator on a PCG source seeded with seed.
func NewSeeded(seed uint64, cfg Config) *RandomGenerator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), cfg)
}

// Generate picks a kind uniformly, samples its parameters and builds the
// exercise. Draw order: kind, lower, upper, exponent, option shuffle.
func (g *RandomGenerator) Generate() Exercise {
	kind := Kinds[g.rng.IntN(len(Kinds))]
	b := KindBounds[kind]

	lower := g.intIn(b.Lower.Min, b.Lower.Max)
	upper := g.intIn(lower+1, b.UpperMax)
	exponent := 0
	if kind == KindPower {
		exponent = g.intIn(b.Exponent.Min, b.Exponent.Max)
	}

	ex, err := NewExercise(kind, lower, upper, exponent, g.rng)
	if err != nil {
		// Sampling ranges come from KindBounds, so this is a programming error.
		panic(err)
	}

	if verr := Validate(&ex, g.cfg.Validators); verr != nil {
		logrus.WithFields(logrus.Fields{
			"kind":      kind.String(),
			"statement": ex.Statement,
		}).Warnf("exercise failed validation: %v", verr)
	}
	return ex
}

// intIn returns a uniform integer in [lo, hi].
func (g *RandomGenerator) intIn(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}
