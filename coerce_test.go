package bomimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_coerceQuantity(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected int
	}{
		{"42", 42},
		{"  42  ", 42},
		{"0", 0},
		{"100.0", 100},
		{"", 1},
		{"many", 1},
		{"-5", 1},
		{"2.5", 1},
		{"1e3", 1000},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			result := coerceQuantity(tc.input)

			assert.Equal(t, tc.expected, result)
		})
	}
}

func Test_coerceUnitCost(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected float64
	}{
		{"0.12", 0.12},
		{" 0.12 ", 0.12},
		{"$4.99", 4.99},
		{"$1,234.56", 1234.56},
		{"1,000", 1000},
		{"", 0},
		{"TBD", 0},
		{"-0.10", 0},
		{"$ 2.50", 2.5},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			result := coerceUnitCost(tc.input)

			assert.Equal(t, tc.expected, result)
		})
	}
}
