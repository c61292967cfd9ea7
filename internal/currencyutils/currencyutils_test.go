package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{name: "Plain", input: "1234.56", expected: "1234.56"},
		{name: "DollarSymbol", input: "$1,234.56", expected: "1234.56"},
		{name: "CurrencyCode", input: "USD 99.99", expected: "99.99"},
		{name: "EuropeanFormat", input: "1.234,56", expected: "1234.56"},
		{name: "CommaDecimal", input: "1234,56", expected: "1234.56"},
		{name: "CommaThousands", input: "1,234", expected: "1234.00"},
		{name: "ApostropheThousands", input: "1'234.56", expected: "1234.56"},
		{name: "Empty", input: "", expected: "0.00"},
		{name: "Garbage", input: "abc", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ParseAmount(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, amount.StringFixed(2))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	amount := decimal.NewFromFloat(1234.5)

	assert.Equal(t, "$1234.50", FormatAmount(amount, "USD"))
	assert.Equal(t, "€1234.50", FormatAmount(amount, "EUR"))
	assert.Equal(t, "CHF 1234.50", FormatAmount(amount, "chf"))
	assert.Equal(t, "1234.50", FormatAmount(amount, ""))
}
