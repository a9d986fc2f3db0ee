package problemgen

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/abhisek/integrals/internal/symbolic"
)

// ErrInvalidParams is returned by NewExercise for out-of-range parameters.
var ErrInvalidParams = errors.New("invalid exercise parameters")

// NewExercise builds the exercise for explicit parameters. The options are
// shuffled with rng; a nil rng leaves them in construction order.
func NewExercise(kind Kind, lower, upper, exponent int, rng *rand.Rand) (Exercise, error) {
	if err := checkParams(kind, lower, upper, exponent); err != nil {
		return Exercise{}, err
	}

	ex := Exercise{
		Kind:  kind,
		Lower: lower,
		Upper: upper,
	}

	switch kind {
	case KindPower:
		ex.Exponent = exponent
		ex.Expr = symbolic.Power{N: exponent}
		c := PowerValue(lower, upper, exponent)
		ex.CorrectValue = symbolic.Round3(c)
		ex.Options = []float64{
			symbolic.Round3(c),
			symbolic.Round3(c * 2),
			symbolic.Round3(c / 2),
			symbolic.Round3(c + 1),
		}
		ex.Statement = fmt.Sprintf(`\int_{%d}^{%d} x^%d \, dx`, lower, upper, exponent)

	case KindReciprocal:
		ex.Expr = symbolic.Reciprocal{}
		c := symbolic.Round3(ReciprocalValue(lower, upper))
		ex.CorrectValue = c
		ex.Options = []float64{
			c,
			symbolic.Round3(c + 1),
			symbolic.Round3(c - 0.5),
			symbolic.Round3(c * 2),
		}
		ex.Statement = fmt.Sprintf(`\int_{%d}^{%d} \frac{1}{x} \, dx`, lower, upper)

	case KindExponential:
		ex.Expr = symbolic.Exponential{}
		c := symbolic.Round3(ExponentialValue(lower, upper))
		ex.CorrectValue = c
		ex.Options = []float64{
			c,
			symbolic.Round3(c + 1),
			symbolic.Round3(c - 1),
			symbolic.Round3(c * 2),
		}
		ex.Statement = fmt.Sprintf(`\int_{%d}^{%d} e^x \, dx`, lower, upper)
	}

	if rng != nil {
		rng.Shuffle(len(ex.Options), func(i, j int) {
			ex.Options[i], ex.Options[j] = ex.Options[j], ex.Options[i]
		})
	}
	return ex, nil
}

func checkParams(kind Kind, lower, upper, exponent int) error {
	b, ok := KindBounds[kind]
	if !ok {
		return fmt.Errorf("kind %d: %w", kind, ErrInvalidParams)
	}
	if !b.Lower.Contains(lower) || upper <= lower || upper > b.UpperMax {
		return fmt.Errorf("%s bounds [%d, %d]: %w", kind, lower, upper, ErrInvalidParams)
	}
	if kind == KindPower && !b.Exponent.Contains(exponent) {
		return fmt.Errorf("%s exponent %d: %w", kind, exponent, ErrInvalidParams)
	}
	return nil
}

// PowerValue is (b^(n+1) - a^(n+1)) / (n+1), unrounded.
func PowerValue(a, b, n int) float64 {
	k := float64(n + 1)
	return (math.Pow(float64(b), k) - math.Pow(float64(a), k)) / k
}

// ReciprocalValue is ln(b) - ln(a), unrounded.
func ReciprocalValue(a, b int) float64 {
	return math.Log(float64(b)) - math.Log(float64(a))
}

// ExponentialValue is e^b - e^a, unrounded.
func ExponentialValue(a, b int) float64 {
	return math.Exp(float64(b)) - math.Exp(float64(a))
}
