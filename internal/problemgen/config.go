package problemgen

import "github.com/abhisek/integrals/internal/symbolic"

// Config controls the behavior of the RandomGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated exercise. A failure is logged; the exercise is still
	// returned unchanged.
	Validators []Validator
}

// DefaultConfig returns a Config with the structural check and, when
// oracle is non-nil, the oracle cross-check.
func DefaultConfig(oracle symbolic.Oracle) Config {
	validators := []Validator{&StructuralValidator{}}
	if oracle != nil {
		validators = append(validators, &OracleValidator{Oracle: oracle})
	}
	return Config{Validators: validators}
}
