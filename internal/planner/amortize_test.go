package planner

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/wishplan/internal/models"
	"fjacquet/wishplan/internal/planerror"
)

func option(rate string, term int) models.FinancingOption {
	return models.FinancingOption{
		Name:       "offer",
		Type:       models.FinancingInstallment,
		AnnualRate: decimal.RequireFromString(rate),
		TermMonths: term,
	}
}

func TestAmortizeZeroRate(t *testing.T) {
	p := newTestPlanner()

	calc, err := p.Amortize(usd("1200"), option("0", 12))
	require.NoError(t, err)

	assert.Equal(t, "100.00", calc.MonthlyPayment.Amount.StringFixed(2))
	assert.Equal(t, "0.00", calc.TotalInterest.Amount.StringFixed(2))
	assert.Equal(t, "1200.00", calc.TotalPaid.Amount.StringFixed(2))
}

func TestAmortizeStandardLoan(t *testing.T) {
	p := newTestPlanner()

	// P = 1000, APR = 24% -> r = 0.02, n = 12.
	calc, err := p.Amortize(usd("1000"), option("24", 12))
	require.NoError(t, err)

	assert.Equal(t, "94.56", calc.MonthlyPayment.Amount.StringFixed(2))
	assert.Equal(t, "134.72", calc.TotalInterest.Amount.StringFixed(2))
	assert.Equal(t, "1134.72", calc.TotalPaid.Amount.StringFixed(2))
}

func TestAmortizeTotalsReconcile(t *testing.T) {
	p := newTestPlanner()

	tests := []struct {
		name  string
		price string
		rate  string
		term  int
	}{
		{name: "ShortBNPL", price: "250", rate: "0", term: 4},
		{name: "CreditCard", price: "799.99", rate: "19.99", term: 18},
		{name: "LongInstallment", price: "3499", rate: "9.5", term: 36},
		{name: "HighRate", price: "1500", rate: "36", term: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc, err := p.Amortize(usd(tt.price), option(tt.rate, tt.term))
			require.NoError(t, err)

			// TotalPaid must equal the rounded payment times the term, and
			// TotalInterest must be the difference to the principal.
			n := decimal.NewFromInt(int64(tt.term))
			expectedPaid := calc.MonthlyPayment.Amount.Mul(n)
			assert.True(t, calc.TotalPaid.Amount.Equal(expectedPaid))

			principal := decimal.RequireFromString(tt.price)
			assert.True(t, calc.TotalPaid.Amount.Equal(principal.Add(calc.TotalInterest.Amount)))
		})
	}
}

func TestAmortizeMonthlyPaymentCoversOneMonthTerm(t *testing.T) {
	p := newTestPlanner()

	calc, err := p.Amortize(usd("100"), option("12", 1))
	require.NoError(t, err)

	// One installment repays principal plus one month of interest.
	assert.Equal(t, "101.00", calc.MonthlyPayment.Amount.StringFixed(2))
	assert.Equal(t, "1.00", calc.TotalInterest.Amount.StringFixed(2))
}

func TestAmortizeRejectsInvalidInput(t *testing.T) {
	p := newTestPlanner()

	t.Run("NonPositivePrice", func(t *testing.T) {
		_, err := p.Amortize(usd("0"), option("12", 12))
		assert.True(t, planerror.IsInvalidInput(err))
	})

	t.Run("NegativeRate", func(t *testing.T) {
		_, err := p.Amortize(usd("100"), option("-5", 12))
		assert.True(t, planerror.IsInvalidInput(err))
	})

	t.Run("ZeroTerm", func(t *testing.T) {
		_, err := p.Amortize(usd("100"), option("12", 0))
		assert.True(t, planerror.IsInvalidInput(err))
	})
}
