// Package symbolic is the expression kernel behind the step-by-step display.
//
// It knows the three integrands the quiz teaches (x^n, 1/x and e^x), their
// antiderivatives, and how to evaluate a definite integral exactly where the
// result is rational and symbolically where it is not. Values are computed
// with math/big so the displayed fractions are exact.
package symbolic

import (
	"fmt"
	"math"
	"math/big"
)

// Expr is a function of the single variable x.
type Expr interface {
	// String returns a plain-text form, e.g. "x**2", "1/x", "exp(x)".
	String() string

	// LaTeX returns the display form, e.g. "x^{2}", "\frac{1}{x}".
	LaTeX() string

	// Eval evaluates the expression at x. Undefined points yield
	// NaN or ±Inf rather than an error.
	Eval(x float64) float64
}

// Power is x^N.
type Power struct {
	N int
}

func (p Power) String() string {
	if p.N == 1 {
		return "x"
	}
	return fmt.Sprintf("x**%d", p.N)
}

func (p Power) LaTeX() string {
	if p.N == 1 {
		return "x"
	}
	return fmt.Sprintf("x^{%d}", p.N)
}

func (p Power) Eval(x float64) float64 {
	return math.Pow(x, float64(p.N))
}

// Reciprocal is 1/x.
type Reciprocal struct{}

func (Reciprocal) String() string { return "1/x" }
func (Reciprocal) LaTeX() string  { return `\frac{1}{x}` }

func (Reciprocal) Eval(x float64) float64 {
	return 1 / x
}

// Exponential is e^x.
type Exponential struct{}

func (Exponential) String() string { return "exp(x)" }
func (Exponential) LaTeX() string  { return "e^{x}" }

func (Exponential) Eval(x float64) float64 {
	return math.Exp(x)
}

// Log is ln|x|, the antiderivative of 1/x.
type Log struct{}

func (Log) String() string { return "log(x)" }
func (Log) LaTeX() string  { return `\ln|x|` }

func (Log) Eval(x float64) float64 {
	return math.Log(math.Abs(x))
}

// Scaled is Coeff * Inner.
type Scaled struct {
	Coeff *big.Rat
	Inner Expr
}

func (s Scaled) String() string {
	if s.Coeff.Cmp(big.NewRat(1, 1)) == 0 {
		return s.Inner.String()
	}
	return fmt.Sprintf("%s*%s", s.Coeff.RatString(), s.Inner.String())
}

func (s Scaled) LaTeX() string {
	c := s.Coeff
	switch {
	case c.Cmp(big.NewRat(1, 1)) == 0:
		return s.Inner.LaTeX()
	case c.IsInt():
		return c.Num().String() + " " + s.Inner.LaTeX()
	case c.Num().Cmp(big.NewInt(1)) == 0:
		return fmt.Sprintf(`\frac{%s}{%s}`, s.Inner.LaTeX(), c.Denom().String())
	}
	return RatLaTeX(c) + " " + s.Inner.LaTeX()
}

func (s Scaled) Eval(x float64) float64 {
	f, _ := s.Coeff.Float64()
	return f * s.Inner.Eval(x)
}

// Antiderivative returns F with F' = expr, omitting the constant.
func Antiderivative(expr Expr) (Expr, error) {
	switch e := expr.(type) {
	case Power:
		if e.N == -1 {
			return Log{}, nil
		}
		return Scaled{Coeff: big.NewRat(1, int64(e.N+1)), Inner: Power{N: e.N + 1}}, nil
	case Reciprocal:
		return Log{}, nil
	case Exponential:
		return Exponential{}, nil
	}
	return nil, fmt.Errorf("antiderivative of %s: %w", expr, ErrUnsupported)
}

// RatLaTeX renders r as an integer or a \frac.
func RatLaTeX(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	num := new(big.Int).Abs(r.Num())
	frac := fmt.Sprintf(`\frac{%s}{%s}`, num.String(), r.Denom().String())
	if r.Sign() < 0 {
		return "-" + frac
	}
	return frac
}
