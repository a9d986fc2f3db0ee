package problemgen

import "fmt"

// Validator checks a generated exercise for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "structural", "oracle-check".
	Name() string

	// Validate returns nil if the exercise passes.
	Validate(ex *Exercise) *ValidationError
}

// ValidationError describes why an exercise failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// Validate runs validators in order and returns the first failure.
func Validate(ex *Exercise, validators []Validator) *ValidationError {
	for _, v := range validators {
		if verr := v.Validate(ex); verr != nil {
			return verr
		}
	}
	return nil
}
