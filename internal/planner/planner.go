// Package planner implements the purchase-planning engine: savings
// projections for wishlist items and amortization of financing offers.
//
// Every operation is a pure function of its inputs plus the injected clock.
// The engine keeps no state between calls, performs no I/O and has no
// suspension points, so plans may be computed concurrently without
// coordination.
package planner

import (
	"github.com/shopspring/decimal"

	"fjacquet/wishplan/internal/dateutils"
	"fjacquet/wishplan/internal/logging"
	"fjacquet/wishplan/internal/models"
	"fjacquet/wishplan/internal/planerror"
)

// maxProjectionMonths caps savings projections at a thousand years. A month
// count past this bound has no meaningful calendar date, and converting it
// to int could overflow; such plans are reported as unreachable.
const maxProjectionMonths = 12 * 1000

// Planner computes purchase plans and wishlist aggregates.
type Planner struct {
	clock  Clock
	logger logging.Logger
}

// New creates a Planner with the given clock. A nil clock falls back to the
// system clock, a nil logger to the default logger.
func New(clock Clock, logger logging.Logger) *Planner {
	if clock == nil {
		clock = SystemClock()
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Planner{clock: clock, logger: logger}
}

// ComputePlan projects when the item becomes affordable given the amount
// already saved and a monthly contribution, or, when a financing offer is
// supplied, reports the amortization outcome of buying now on credit.
//
// The amount still owed is max(price - currentSaved, 0): oversaving clamps
// to a zero-month projection dated now. A zero contribution with a positive
// amount owed yields an Unreachable projection, never an overflowing date.
func (p *Planner) ComputePlan(
	item models.WishlistItem,
	currentSaved models.Money,
	monthlyContribution models.Money,
	financing *models.FinancingOption,
) (models.PurchasePlan, error) {
	if err := item.Validate(); err != nil {
		return models.PurchasePlan{}, err
	}
	if currentSaved.IsNegative() {
		return models.PurchasePlan{}, planerror.NewInvalidInput(
			"current_saved", currentSaved.String(), "must not be negative")
	}
	if monthlyContribution.IsNegative() {
		return models.PurchasePlan{}, planerror.NewInvalidInput(
			"monthly_contribution", monthlyContribution.String(), "must not be negative")
	}

	owed, err := item.Price.Sub(currentSaved)
	if err != nil {
		return models.PurchasePlan{}, err
	}
	if _, err := item.Price.Cmp(monthlyContribution); err != nil {
		return models.PurchasePlan{}, err
	}
	if owed.IsNegative() {
		owed = models.ZeroMoney(owed.Currency)
	}

	now := p.clock.Now()
	plan := models.PurchasePlan{
		ItemID:              item.ID,
		AmountOwed:          owed,
		MonthlyContribution: monthlyContribution,
		ComputedAt:          now,
	}

	if financing != nil {
		// Financed purchases happen immediately; the projection is the
		// amortization outcome, not a savings timeline.
		calc, err := p.Amortize(item.Price, *financing)
		if err != nil {
			return models.PurchasePlan{}, err
		}
		opt := *financing
		plan.Financing = &opt
		plan.Calculation = &calc
		plan.Projection = models.Reachable(0)
		plan.EstimatedPurchaseDate = &now

		p.logger.Debug("computed financed plan",
			logging.F(logging.FieldItemID, item.ID),
			logging.F("monthly_payment", calc.MonthlyPayment.String()))
		return plan, nil
	}

	switch {
	case owed.IsZero():
		plan.Projection = models.Reachable(0)
		plan.EstimatedPurchaseDate = &now
	case monthlyContribution.IsZero():
		plan.Projection = models.Unreachable()
	default:
		quotient := owed.Amount.Div(monthlyContribution.Amount).Ceil()
		if quotient.GreaterThan(decimal.NewFromInt(maxProjectionMonths)) {
			plan.Projection = models.Unreachable()
			break
		}
		months := int(quotient.IntPart())
		estimated := dateutils.AddMonths(now, months)
		plan.Projection = models.Reachable(months)
		plan.EstimatedPurchaseDate = &estimated
	}

	p.logger.Debug("computed savings plan",
		logging.F(logging.FieldItemID, item.ID),
		logging.F(logging.FieldMonths, plan.Projection.String()))
	return plan, nil
}
