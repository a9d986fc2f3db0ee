package problemgen

import "fmt"

// NumOptions is the number of choices every exercise offers.
const NumOptions = 4

// StructuralValidator checks bounds, exponent range, option count and that
// the correct value appears exactly once among the options.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(ex *Exercise) *ValidationError {
	if err := checkParams(ex.Kind, ex.Lower, ex.Upper, ex.Exponent); err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   err.Error(),
		}
	}
	if ex.Expr == nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "expression is missing",
		}
	}
	if ex.Statement == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "statement is empty",
		}
	}
	if len(ex.Options) != NumOptions {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected %d options, got %d", NumOptions, len(ex.Options)),
		}
	}

	matches := 0
	for _, o := range ex.Options {
		if o == ex.CorrectValue {
			matches++
		}
	}
	if matches != 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("correct value %v appears %d times among options", ex.CorrectValue, matches),
		}
	}
	return nil
}
