// Package score normalizes the score field of a model evaluation.
//
// The model is asked for a number in [0,100] but in practice returns numbers,
// numeric strings, or band ranges like "70-89". Every consumer of a raw score
// goes through Normalize so the range policy lives in exactly one place.
package score

import (
	"fmt"
	"strconv"
	"strings"
)

// Normalize converts a raw score value into a number in [0,100].
//
// Accepted inputs: float64/int, a numeric string, or a range string "lo-hi".
// Ranges resolve to their upper bound. Values outside [0,100] are clamped.
// Anything else is an error; callers treat that as a zero-score evaluation.
func Normalize(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return clamp(v), nil
	case int:
		return clamp(float64(v)), nil
	case string:
		return parseString(v)
	default:
		return 0, fmt.Errorf("score: unsupported type %T", raw)
	}
}

func parseString(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("score: empty string")
	}

	// Plain number first, so "-5" is a negative number and not a range.
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return clamp(n), nil
	}

	// Range like "70-89" or "70 - 89": take the upper bound.
	if i := strings.Index(s, "-"); i > 0 {
		hi := strings.TrimSpace(s[i+1:])
		if n, err := strconv.ParseFloat(hi, 64); err == nil {
			return clamp(n), nil
		}
	}

	return 0, fmt.Errorf("score: cannot parse %q", s)
}

func clamp(n float64) float64 {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
