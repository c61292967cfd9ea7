package models

import (
	"github.com/shopspring/decimal"

	"fjacquet/wishplan/internal/planerror"
)

// FinancingType tags the kind of financing offer.
type FinancingType string

const (
	FinancingInstallment FinancingType = "installment"
	FinancingCreditCard  FinancingType = "credit-card"
	FinancingBNPL        FinancingType = "bnpl"
)

var financingTypes = map[FinancingType]struct{}{
	FinancingInstallment: {},
	FinancingCreditCard:  {},
	FinancingBNPL:        {},
}

// ParseFinancingType converts a string to a FinancingType, rejecting unknown values.
func ParseFinancingType(s string) (FinancingType, error) {
	t := FinancingType(s)
	if _, ok := financingTypes[t]; !ok {
		return "", planerror.NewInvalidInput("financing_type", s,
			"must be one of installment, credit-card, bnpl")
	}
	return t, nil
}

// FinancingOption is an offer to finance a purchase over a fixed term.
type FinancingOption struct {
	Name       string          `json:"name" yaml:"name"`
	Type       FinancingType   `json:"type" yaml:"type"`
	AnnualRate decimal.Decimal `json:"annual_rate" yaml:"annual_rate"` // percent, e.g. 24 for 24% APR
	TermMonths int             `json:"term_months" yaml:"term_months"`
}

// Validate rejects invalid financing input: negative APR or non-positive term.
func (o FinancingOption) Validate() error {
	if _, ok := financingTypes[o.Type]; !ok {
		return planerror.NewInvalidInput("financing_type", string(o.Type),
			"must be one of installment, credit-card, bnpl")
	}
	if o.AnnualRate.IsNegative() {
		return planerror.NewInvalidInput("annual_rate", o.AnnualRate.String(), "must not be negative")
	}
	if o.TermMonths <= 0 {
		return planerror.NewInvalidInput("term_months", "", "must be positive")
	}
	return nil
}

// FinancingCalculation is the amortization outcome of financing a price with
// a FinancingOption. It is a derived, read-only value.
//
// Invariant: TotalPaid = principal + TotalInterest, where TotalPaid is the
// rounded monthly payment times the term, so the totals reconcile exactly
// with what the user pays in real installments.
type FinancingCalculation struct {
	MonthlyPayment Money `json:"monthly_payment" yaml:"monthly_payment"`
	TotalInterest  Money `json:"total_interest" yaml:"total_interest"`
	TotalPaid      Money `json:"total_paid" yaml:"total_paid"`
}
