package model

import (
	"math"
	"strconv"
	"strings"
)

// FormatDecimal renders v as the shortest decimal that parses back to v,
// keeping at least one fractional digit ("250.0", "15.99").
func FormatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return s
	}
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ParseDecimal parses a decimal produced by FormatDecimal or typed by a user.
// Surrounding whitespace is ignored.
func ParseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
