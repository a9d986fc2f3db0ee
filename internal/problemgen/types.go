package problemgen

import "github.com/abhisek/integrals/internal/symbolic"

// Kind is one of the three integration formulas the quiz teaches.
type Kind int

const (
	// KindPower is ∫ x^n dx.
	KindPower Kind = iota
	// KindReciprocal is ∫ 1/x dx.
	KindReciprocal
	// KindExponential is ∫ e^x dx.
	KindExponential
)

// Kinds lists every Kind in the order the generator picks from.
var Kinds = []Kind{KindPower, KindReciprocal, KindExponential}

func (k Kind) String() string {
	switch k {
	case KindPower:
		return "x^n"
	case KindReciprocal:
		return "1/x"
	case KindExponential:
		return "e^x"
	}
	return "unknown"
}

// Name is the formula name shown in the theory and history screens.
func (k Kind) Name() string {
	switch k {
	case KindPower:
		return "Power rule"
	case KindReciprocal:
		return "Reciprocal rule"
	case KindExponential:
		return "Exponential rule"
	}
	return "Unknown"
}

// Range is an inclusive integer interval.
type Range struct {
	Min int
	Max int
}

// Contains reports whether v lies in the range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Bounds holds the sampling ranges for one Kind. The upper bound is drawn
// from [lower+1, UpperMax].
type Bounds struct {
	Lower    Range
	UpperMax int
	Exponent Range // zero Range when the kind has no exponent
}

// KindBounds are the fixed sampling ranges per kind.
var KindBounds = map[Kind]Bounds{
	KindPower:       {Lower: Range{0, 3}, UpperMax: 5, Exponent: Range{1, 4}},
	KindReciprocal:  {Lower: Range{1, 3}, UpperMax: 6},
	KindExponential: {Lower: Range{0, 2}, UpperMax: 4},
}

// Exercise is one multiple-choice definite integral. Exercises are
// immutable once generated; callers must not modify Options.
type Exercise struct {
	// Kind selects the formula.
	Kind Kind

	// Lower and Upper are the integration bounds, Lower < Upper.
	Lower int
	Upper int

	// Exponent is n for KindPower (1-4); zero for the other kinds.
	Exponent int

	// Expr is the integrand, used for steps and plotting.
	Expr symbolic.Expr

	// CorrectValue is the closed-form value rounded to 3 decimals.
	CorrectValue float64

	// Options holds exactly 4 values, rounded to 3 decimals, in display
	// order. CorrectValue appears among them; distractors may collide.
	Options []float64

	// Statement is the LaTeX-style integral, e.g. "\int_{0}^{2} x^1 \, dx".
	Statement string
}

// HasExponent reports whether Exponent is meaningful.
func (e *Exercise) HasExponent() bool {
	return e.Kind == KindPower
}

// CorrectIndex returns the first option index equal to CorrectValue,
// or -1 if none is.
func (e *Exercise) CorrectIndex() int {
	for i, o := range e.Options {
		if o == e.CorrectValue {
			return i
		}
	}
	return -1
}

// Formula is the definite-integral identity for the kind, in LaTeX.
func (k Kind) Formula() string {
	switch k {
	case KindPower:
		return `\int_a^b x^n \, dx = \frac{b^{n+1} - a^{n+1}}{n+1}, \quad n \neq -1`
	case KindReciprocal:
		return `\int_a^b \frac{1}{x} \, dx = \ln|b| - \ln|a| = \ln\left|\frac{b}{a}\right|`
	case KindExponential:
		return `\int_a^b e^x \, dx = e^b - e^a`
	}
	return ""
}

// CombineNote closes the theory section.
const CombineNote = "These formulas can be combined to compute more complex integrals."
