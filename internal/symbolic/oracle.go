package symbolic

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

var (
	// ErrUnsupported is returned for expressions the kernel cannot integrate.
	ErrUnsupported = errors.New("unsupported expression")

	// ErrDomain is returned when the interval crosses a singularity.
	ErrDomain = errors.New("interval outside the domain of the integrand")
)

// Result is a definite integral evaluated by the kernel.
type Result struct {
	// Exact is the exact value in LaTeX, e.g. "\frac{81}{4}", "\ln{2}", "e - 1".
	Exact string

	// Value is the float64 approximation of Exact.
	Value float64
}

// Oracle integrates the quiz integrands over integer bounds.
type Oracle interface {
	IntegrateDefinite(expr Expr, lower, upper int) (Result, error)
	Steps(expr Expr, lower, upper int) ([]string, error)
}

// Kernel is the built-in Oracle.
type Kernel struct{}

var _ Oracle = (*Kernel)(nil)

// NewKernel returns a ready Kernel.
func NewKernel() *Kernel {
	return &Kernel{}
}

// IntegrateDefinite evaluates the integral of expr from lower to upper.
func (k *Kernel) IntegrateDefinite(expr Expr, lower, upper int) (Result, error) {
	switch e := expr.(type) {
	case Power:
		if e.N == -1 {
			return k.IntegrateDefinite(Reciprocal{}, lower, upper)
		}
		if e.N < 0 && lower <= 0 && upper >= 0 {
			return Result{}, fmt.Errorf("integrate %s over [%d, %d]: %w", expr, lower, upper, ErrDomain)
		}
		return integratePower(e.N, lower, upper), nil
	case Reciprocal:
		if lower == 0 || upper == 0 || (lower < 0) != (upper < 0) {
			return Result{}, fmt.Errorf("integrate %s over [%d, %d]: %w", expr, lower, upper, ErrDomain)
		}
		return integrateReciprocal(lower, upper), nil
	case Exponential:
		return integrateExponential(lower, upper), nil
	}
	return Result{}, fmt.Errorf("integrate %s: %w", expr, ErrUnsupported)
}

// Steps returns the worked derivation of the integral as display lines.
func (k *Kernel) Steps(expr Expr, lower, upper int) ([]string, error) {
	res, err := k.IntegrateDefinite(expr, lower, upper)
	if err != nil {
		return nil, err
	}
	anti, err := Antiderivative(expr)
	if err != nil {
		return nil, err
	}

	lines := []string{
		fmt.Sprintf(`\int_{%d}^{%d} %s \, dx = %s`, lower, upper, expr.LaTeX(), res.Exact),
		fmt.Sprintf(`= \left[ %s \right]_{%d}^{%d}`, anti.LaTeX(), lower, upper),
	}

	switch e := expr.(type) {
	case Power:
		if e.N == -1 {
			lines = append(lines, logLine(lower, upper))
			break
		}
		lines = append(lines, fmt.Sprintf(`= \frac{%d^{%d+1} - %d^{%d+1}}{%d+1}`, upper, e.N, lower, e.N, e.N))
	case Reciprocal:
		lines = append(lines, logLine(lower, upper))
	case Exponential:
		lines = append(lines, fmt.Sprintf(`= e^{%d} - e^{%d} = %s`, upper, lower, FormatValue(Round3(res.Value))))
	}
	return lines, nil
}

func logLine(lower, upper int) string {
	v := math.Log(math.Abs(float64(upper))) - math.Log(math.Abs(float64(lower)))
	return fmt.Sprintf(`= \ln|%d| - \ln|%d| = %s`, upper, lower, FormatValue(Round3(v)))
}

func integratePower(n, lower, upper int) Result {
	k := n + 1
	diff := new(big.Rat).Sub(ratPow(upper, k), ratPow(lower, k))
	r := diff.Quo(diff, big.NewRat(int64(k), 1))
	f, _ := r.Float64()
	return Result{Exact: RatLaTeX(r), Value: f}
}

// ratPow returns x^k exactly; k may be negative when x != 0.
func ratPow(x, k int) *big.Rat {
	if k >= 0 {
		p := new(big.Int).Exp(big.NewInt(int64(x)), big.NewInt(int64(k)), nil)
		return new(big.Rat).SetInt(p)
	}
	p := new(big.Int).Exp(big.NewInt(int64(x)), big.NewInt(int64(-k)), nil)
	return new(big.Rat).SetFrac(big.NewInt(1), p)
}

func integrateReciprocal(lower, upper int) Result {
	ratio := big.NewRat(int64(abs(upper)), int64(abs(lower)))
	v := math.Log(math.Abs(float64(upper))) - math.Log(math.Abs(float64(lower)))

	if ratio.Cmp(big.NewRat(1, 1)) == 0 {
		return Result{Exact: "0", Value: 0}
	}
	if ratio.IsInt() {
		return Result{Exact: fmt.Sprintf(`\ln{%s}`, ratio.Num().String()), Value: v}
	}
	return Result{Exact: fmt.Sprintf(`\ln{%s}`, RatLaTeX(ratio)), Value: v}
}

func integrateExponential(lower, upper int) Result {
	v := math.Exp(float64(upper)) - math.Exp(float64(lower))
	if lower == upper {
		return Result{Exact: "0", Value: 0}
	}
	return Result{Exact: expTerm(upper) + " - " + expTerm(lower), Value: v}
}

func expTerm(k int) string {
	switch k {
	case 0:
		return "1"
	case 1:
		return "e"
	}
	return fmt.Sprintf("e^{%d}", k)
}

// Round3 rounds x to three decimal places, halves away from zero.
func Round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// FormatValue renders a rounded value the way the quiz displays numbers:
// shortest representation, always with a decimal point ("2.0", "0.693").
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
