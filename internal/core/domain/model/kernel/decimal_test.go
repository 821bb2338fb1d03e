package kernel_test

import (
	"testing"

	"meatmanager/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"2", "2"},
		{"2.5", "2.5"},
		{"2,5", "2.5"},
		{"  1,25 ", "1.25"},
		{"0.005", "0.01"},
		{"-3,10", "-3.1"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			d, err := kernel.ParseDecimal(tc.input)

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(d), "got %s", d)
		})
	}

	t.Run("rejects garbage", func(t *testing.T) {
		for _, input := range []string{"", "abc", "1,2,3", "1.5kg"} {
			_, err := kernel.ParseDecimal(input)
			assert.Error(t, err, "input %q", input)
		}
	})
}

func TestParseDecimalOrZero(t *testing.T) {
	assert.True(t, kernel.ParseDecimalOrZero("").IsZero())
	assert.True(t, kernel.ParseDecimalOrZero("zwei").IsZero())
	assert.True(t, decimal.RequireFromString("0.3").Equal(kernel.ParseDecimalOrZero("0,30")))
}

func TestParseQuantity(t *testing.T) {
	t.Run("positive quantities are kept", func(t *testing.T) {
		assert.True(t, decimal.RequireFromString("1.5").Equal(kernel.ParseQuantity("1,5")))
		assert.True(t, decimal.NewFromInt(3).Equal(kernel.ParseQuantity("3")))
	})

	t.Run("blank, garbage, zero and negative mean no line", func(t *testing.T) {
		for _, input := range []string{"", "   ", "x", "0", "0,00", "-1", "0.001"} {
			assert.True(t, kernel.ParseQuantity(input).IsZero(), "input %q", input)
		}
	})
}
