package resolver

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// decimal normalises s to a plain base-10 literal: an optional sign followed by digits,
// leading zeros removed. Base prefixes, underscores and fractions are rejected.
func decimal(s string) (string, error) {
	sign, digits := "", s
	if digits != "" && (digits[0] == '+' || digits[0] == '-') {
		sign, digits = digits[:1], digits[1:]
	}
	if digits == "" {
		return "", fmt.Errorf("%q is not a decimal integer", s)
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("%q is not a decimal integer", s)
		}
	}
	if digits = strings.TrimLeft(digits, "0"); digits == "" {
		digits = "0"
	}
	return sign + digits, nil
}

func toInt64(v any) (int64, error) {
	s, err := cast.ToStringE(v)
	if err != nil {
		return 0, err
	}
	if s, err = decimal(s); err != nil {
		return 0, err
	}
	return cast.ToInt64E(s)
}

func toInt32(v any) (int32, error) {
	n, err := toInt64(v)
	if err != nil {
		return 0, err
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%d is out of int32 range", n)
	}
	return int32(n), nil
}
