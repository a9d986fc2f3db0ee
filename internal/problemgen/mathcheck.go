package problemgen

import (
	"fmt"

	"github.com/abhisek/integrals/internal/symbolic"
)

// OracleValidator independently recomputes the integral through the
// symbolic oracle and compares it to the closed-form CorrectValue. Both
// paths must agree once rounded to 3 decimals.
type OracleValidator struct {
	Oracle symbolic.Oracle
}

func (v *OracleValidator) Name() string { return "oracle-check" }

func (v *OracleValidator) Validate(ex *Exercise) *ValidationError {
	res, err := v.Oracle.IntegrateDefinite(ex.Expr, ex.Lower, ex.Upper)
	if err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("oracle failed: %v", err),
		}
	}
	if got := symbolic.Round3(res.Value); got != ex.CorrectValue {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("oracle computed %v (%s) but closed form gave %v", got, res.Exact, ex.CorrectValue),
		}
	}
	return nil
}
