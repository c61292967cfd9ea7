// Package add handles adding items to the wishlist.
package add

import (
	"context"

	"github.com/spf13/cobra"

	"fjacquet/wishplan/cmd/root"
	"fjacquet/wishplan/internal/models"
	"fjacquet/wishplan/internal/suggest"
)

var (
	name            string
	price           string
	currency        string
	priority        string
	category        string
	url             string
	notes           string
	targetDate      string
	suggestCategory bool
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Add an item to the wishlist",
	Long:  `Add an item to the wishlist with a price, priority and optional category.`,
	Run:   addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&name, "name", "n", "", "Item name (required)")
	Cmd.Flags().StringVarP(&price, "price", "p", "", "Item price, e.g. 1299.90 (required)")
	Cmd.Flags().StringVarP(&currency, "currency", "c", "", "Currency code, defaults to the configured currency")
	Cmd.Flags().StringVar(&priority, "priority", string(models.PriorityMedium), "Priority: low, medium, high or urgent")
	Cmd.Flags().StringVar(&category, "category", "", "Item category")
	Cmd.Flags().StringVar(&url, "url", "", "Product page URL")
	Cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	Cmd.Flags().StringVar(&targetDate, "target-date", "", "Target purchase date (YYYY-MM-DD)")
	Cmd.Flags().BoolVar(&suggestCategory, "suggest-category", false, "Suggest a category when none is given")
	_ = Cmd.MarkFlagRequired("name")
	_ = Cmd.MarkFlagRequired("price")
}

func addFunc(cmd *cobra.Command, args []string) {
	cur := currency
	if cur == "" {
		cur = root.App.Config().Planner.Currency
	}

	builder := models.NewWishlistItemBuilder().
		WithName(name).
		WithPriceFromString(price, cur).
		WithPriority(priority).
		WithCategory(category).
		WithURL(url).
		WithNotes(notes)
	if targetDate != "" {
		builder = builder.WithTargetDateFromString(targetDate)
	}

	item, err := builder.Build()
	if err != nil {
		root.Log.Fatalf("Invalid item: %v", err)
	}

	if item.Category == "" && suggestCategory {
		suggested, err := root.App.Suggester().SuggestCategory(context.Background(), suggest.ItemQuery{
			Name:       item.Name,
			Notes:      item.Notes,
			Price:      item.Price.String(),
			Categories: root.App.Suggester().Categories(),
		})
		if err != nil {
			root.Log.Warnf("Category suggestion failed: %v", err)
		} else {
			item.Category = suggested
			root.Log.Infof("Suggested category: %s", suggested)
		}
	}

	if err := root.App.Wishlist().Add(item); err != nil {
		root.Log.Fatalf("Error adding item: %v", err)
	}
	root.Log.Infof("Added %s (%s) with ID %s", item.Name, item.Price.String(), item.ID)
}
