package planner

import (
	"github.com/shopspring/decimal"

	"fjacquet/wishplan/internal/models"
	"fjacquet/wishplan/internal/planerror"
)

var one = decimal.NewFromInt(1)

// Amortize computes the fixed monthly payment and total cost of financing a
// price with the given offer, using the standard amortizing-loan formula
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// with monthly rate r = APR/12/100 and term n in months. A zero APR divides
// the principal evenly across the term.
//
// All intermediate math runs at full decimal precision; only the displayed
// monthly payment is rounded (half-up, to the currency's minor unit). Totals
// are derived from the rounded payment so TotalPaid equals exactly n real
// installments and TotalInterest = TotalPaid - principal.
func (p *Planner) Amortize(price models.Money, opt models.FinancingOption) (models.FinancingCalculation, error) {
	if err := opt.Validate(); err != nil {
		return models.FinancingCalculation{}, err
	}
	if !price.IsPositive() {
		return models.FinancingCalculation{}, planerror.NewInvalidInput(
			"price", price.String(), "must be positive")
	}

	n := decimal.NewFromInt(int64(opt.TermMonths))

	var payment decimal.Decimal
	if opt.AnnualRate.IsZero() {
		payment = price.Amount.Div(n)
	} else {
		r := opt.AnnualRate.Div(decimal.NewFromInt(1200))
		factor := one.Add(r).Pow(n)
		payment = price.Amount.Mul(r).Mul(factor).Div(factor.Sub(one))
	}

	monthly := models.NewMoney(payment, price.Currency).Round(2)
	totalPaid := monthly.Mul(n)
	totalInterest, err := totalPaid.Sub(price)
	if err != nil {
		return models.FinancingCalculation{}, err
	}

	return models.FinancingCalculation{
		MonthlyPayment: monthly,
		TotalInterest:  totalInterest,
		TotalPaid:      totalPaid,
	}, nil
}
