package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Projection is the tagged outcome of a savings projection: either the goal
// is reachable in a known number of months, or it is unreachable at the
// current contribution rate. There is no numeric sentinel; the month count
// is only accessible when the goal is reachable, so "never" can not leak
// into arithmetic by accident.
type Projection struct {
	reachable bool
	months    int
}

// Reachable builds a projection that completes after the given number of
// months. Negative input clamps to zero.
func Reachable(months int) Projection {
	if months < 0 {
		months = 0
	}
	return Projection{reachable: true, months: months}
}

// Unreachable builds a projection for a goal that can not be completed at
// the current contribution rate.
func Unreachable() Projection {
	return Projection{}
}

// IsReachable reports whether the goal completes in finite time.
func (p Projection) IsReachable() bool {
	return p.reachable
}

// Months returns the number of months until completion and true, or zero
// and false when the goal is unreachable.
func (p Projection) Months() (int, bool) {
	if !p.reachable {
		return 0, false
	}
	return p.months, true
}

// String renders "unreachable" or the month count.
func (p Projection) String() string {
	if !p.reachable {
		return "unreachable"
	}
	if p.months == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", p.months)
}

// projectionJSON is the serialized form of a Projection.
type projectionJSON struct {
	Reachable bool `json:"reachable"`
	Months    int  `json:"months,omitempty"`
}

// MarshalJSON serializes the projection with an explicit reachable flag.
func (p Projection) MarshalJSON() ([]byte, error) {
	return json.Marshal(projectionJSON{Reachable: p.reachable, Months: p.months})
}

// UnmarshalJSON restores a projection from its serialized form.
func (p *Projection) UnmarshalJSON(data []byte) error {
	var raw projectionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Reachable {
		*p = Reachable(raw.Months)
	} else {
		*p = Unreachable()
	}
	return nil
}

// PurchasePlan projects when a wishlist item becomes affordable, or what
// financing it would cost. Plans are plain values keyed by item identity;
// they are recomputed on demand and never stored alongside the item.
type PurchasePlan struct {
	ItemID                string                `json:"item_id"`
	AmountOwed            Money                 `json:"amount_owed"`
	MonthlyContribution   Money                 `json:"monthly_contribution"`
	Projection            Projection            `json:"projection"`
	EstimatedPurchaseDate *time.Time            `json:"estimated_purchase_date,omitempty"`
	Financing             *FinancingOption      `json:"financing,omitempty"`
	Calculation           *FinancingCalculation `json:"calculation,omitempty"`
	ComputedAt            time.Time             `json:"computed_at"`
}

// Financed reports whether the plan uses a financing offer instead of a
// savings projection.
func (p PurchasePlan) Financed() bool {
	return p.Financing != nil
}

// WishlistSummary aggregates the active wishlist.
type WishlistSummary struct {
	TotalValue     Money      `json:"total_value"`
	Completion     Projection `json:"completion"`
	ActiveCount    int        `json:"active_count"`
	PurchasedCount int        `json:"purchased_count"`
}
