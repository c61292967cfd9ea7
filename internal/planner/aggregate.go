package planner

import (
	"fjacquet/wishplan/internal/logging"
	"fjacquet/wishplan/internal/models"
)

// AggregateWishlist sums the value of the non-purchased items and reports how
// long the whole active wishlist takes to complete: the maximum month count
// across the supplied plans, or Unreachable when any active item's plan is
// unreachable. An empty active set completes in zero months.
//
// Items without a plan contribute to the total value but not to the
// completion timeline. Plans are matched to items by identity.
func (p *Planner) AggregateWishlist(
	items []models.WishlistItem,
	plans map[string]models.PurchasePlan,
) (models.WishlistSummary, error) {
	summary := models.WishlistSummary{
		Completion: models.Reachable(0),
	}

	var total models.Money
	maxMonths := 0
	unbounded := false

	for _, item := range items {
		if item.Purchased {
			summary.PurchasedCount++
			continue
		}
		summary.ActiveCount++

		if total.Currency == "" {
			total = models.ZeroMoney(item.Price.Currency)
		}
		sum, err := total.Add(item.Price)
		if err != nil {
			return models.WishlistSummary{}, err
		}
		total = sum

		plan, ok := plans[item.ID]
		if !ok {
			continue
		}
		months, reachable := plan.Projection.Months()
		if !reachable {
			unbounded = true
			continue
		}
		if months > maxMonths {
			maxMonths = months
		}
	}

	if total.Currency == "" {
		total = models.ZeroMoney(models.DefaultCurrency)
	}
	summary.TotalValue = total

	if unbounded {
		summary.Completion = models.Unreachable()
	} else {
		summary.Completion = models.Reachable(maxMonths)
	}

	p.logger.Debug("aggregated wishlist",
		logging.F(logging.FieldCount, summary.ActiveCount),
		logging.F("completion", summary.Completion.String()))
	return summary, nil
}
