package bomimport

import (
	"strconv"
	"strings"
)

// Coercion defaults for hand-entered spreadsheet data. Parse failures never
// abort an import; they fall back to these values.
const (
	defaultQuantity = 1
	defaultUnitCost = 0.0
)

// coerceQuantity parses a quantity cell into a non-negative integer.
// Surrounding whitespace is stripped; a value entered as a decimal
// ("100.0") is accepted when it is a whole number. Parse failure or a
// negative result yields defaultQuantity.
func coerceQuantity(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultQuantity
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return defaultQuantity
		}
		return n
	}

	// Spreadsheets frequently store counts as floats.
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f < 0 || f != float64(int(f)) {
			return defaultQuantity
		}
		return int(f)
	}

	return defaultQuantity
}

// coerceUnitCost parses a cost cell into a non-negative decimal. Currency
// symbols, thousands separators, and whitespace are stripped first. Parse
// failure or a negative result yields defaultUnitCost.
func coerceUnitCost(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultUnitCost
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return defaultUnitCost
	}
	return f
}
