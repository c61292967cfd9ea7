// Package list handles listing wishlist items.
package list

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fjacquet/wishplan/cmd/root"
	"fjacquet/wishplan/internal/dateutils"
	"fjacquet/wishplan/internal/models"
)

var (
	showAll       bool
	showPurchased bool
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List wishlist items",
	Long:  `List active wishlist items, sorted by priority then creation date.`,
	Run:   listFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&showAll, "all", "a", false, "Include purchased items")
	Cmd.Flags().BoolVar(&showPurchased, "purchased", false, "Show only purchased items")
}

func listFunc(cmd *cobra.Command, args []string) {
	var (
		items []models.WishlistItem
		err   error
	)
	switch {
	case showPurchased:
		items, err = root.App.Wishlist().Purchased()
	case showAll:
		items, err = root.App.Wishlist().All()
	default:
		items, err = root.App.Wishlist().Active()
	}
	if err != nil {
		root.Log.Fatalf("Error listing items: %v", err)
	}

	if len(items) == 0 {
		root.Log.Info("The wishlist is empty")
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Priority.Rank() != items[j].Priority.Rank() {
			return items[i].Priority.Rank() > items[j].Priority.Rank()
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tPRIORITY\tCATEGORY\tSTATUS")
	for _, item := range items {
		status := "active"
		if item.Purchased {
			status = "purchased"
			if item.PurchasedDate != nil {
				status = "purchased " + dateutils.ToISODate(*item.PurchasedDate)
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			item.ID, item.Name, item.Price.String(), item.Priority, item.Category, status)
	}
	if err := w.Flush(); err != nil {
		root.Log.Warnf("Error writing listing: %v", err)
	}
}
