// Package export handles writing plan reports to CSV.
package export

import (
	"github.com/spf13/cobra"

	"fjacquet/wishplan/cmd/root"
	"fjacquet/wishplan/internal/models"
	"fjacquet/wishplan/internal/validation"
)

const defaultOutput = "plans.csv"

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export purchase plans to CSV",
	Long: `Export every active wishlist item with its savings projection at the
configured monthly contribution to a CSV file.`,
	Run: exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
	output := root.SharedFlags.Output
	if output == "" {
		output = defaultOutput
	}
	if err := validation.ValidateOutputFile(output); err != nil {
		root.Log.Fatalf("Invalid output file: %v", err)
	}

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

	rows := root.App.Reporter().Rows(items, plans)
	if err := root.App.Reporter().WriteCSVFile(rows, output); err != nil {
		root.Log.Fatalf("Error writing CSV: %v", err)
	}
	root.Log.Infof("Exported %d plans to %s", len(rows), output)
}
