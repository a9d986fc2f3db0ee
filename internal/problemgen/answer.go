package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// CheckAnswer reports whether selected is the exercise's correct value.
// Values are compared exactly; both sides are already rounded to 3 decimals.
func CheckAnswer(selected float64, ex *Exercise) bool {
	return selected == ex.CorrectValue
}

// ParseChoice resolves typed input to one of the exercise's options.
//
// Accepted forms:
// - An option index 1-4 (or a letter a-d, case-insensitive)
// - The option value itself, e.g. "2.667"; trailing zeros are ignored
func ParseChoice(input string, ex *Exercise) (float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("empty choice")
	}

	if len(input) == 1 {
		c := strings.ToLower(input)[0]
		if c >= 'a' && c < 'a'+byte(len(ex.Options)) {
			return ex.Options[c-'a'], nil
		}
	}

	if idx, err := strconv.Atoi(input); err == nil && idx >= 1 && idx <= len(ex.Options) {
		return ex.Options[idx-1], nil
	}

	f, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid choice %q: %w", input, err)
	}
	for _, o := range ex.Options {
		if o == f {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%q is not one of the options", input)
}
