// Package summary handles wishlist-wide aggregation.
package summary

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/wishplan/cmd/root"
	"fjacquet/wishplan/internal/models"
)

var asJSON bool

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize the wishlist",
	Long: `Summarize the active wishlist: total value, item counts and how many
months until everything is affordable at the configured monthly savings.`,
	Run: summaryFunc,
}

func init() {
	Cmd.Flags().BoolVar(&asJSON, "json", false, "Print the summary as JSON")
}

func summaryFunc(cmd *cobra.Command, args []string) {
	items, err := root.App.Wishlist().All()
	if err != nil {
		root.Log.Fatalf("Error loading wishlist: %v", err)
	}

	monthly := root.App.DefaultMonthlySavings()
	plans := make(map[string]models.PurchasePlan, len(items))
	for _, item := range items {
		if item.Purchased {
			continue
		}
		p, err := root.App.Planner().ComputePlan(item, models.ZeroMoney(item.Price.Currency), monthly, nil)
		if err != nil {
			root.Log.Fatalf("Error planning %s: %v", item.Name, err)
		}
		plans[item.ID] = p
	}

	summary, err := root.App.Planner().AggregateWishlist(items, plans)
	if err != nil {
		root.Log.Fatalf("Error aggregating wishlist: %v", err)
	}

	if asJSON {
		data, err := root.App.Reporter().SummaryJSON(summary)
		if err != nil {
			root.Log.Fatalf("Error encoding summary: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Active items:     %d\n", summary.ActiveCount)
	fmt.Printf("Purchased items:  %d\n", summary.PurchasedCount)
	fmt.Printf("Total value:      %s\n", summary.TotalValue.String())
	fmt.Printf("All affordable:   %s (at %s per month)\n", summary.Completion.String(), monthly.String())
}
