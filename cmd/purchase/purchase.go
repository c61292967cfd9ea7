// Package purchase handles marking wishlist items as bought.
package purchase

import (
	"github.com/spf13/cobra"

	"fjacquet/wishplan/cmd/common"
	"fjacquet/wishplan/cmd/root"
	"fjacquet/wishplan/internal/planner"
)

// Cmd represents the purchase command
var Cmd = &cobra.Command{
	Use:   "purchase <item-id-or-name>",
	Short: "Mark a wishlist item as purchased",
	Long:  `Mark a wishlist item as purchased, stamping the purchase date.`,
	Args:  cobra.ExactArgs(1),
	Run:   purchaseFunc,
}

func purchaseFunc(cmd *cobra.Command, args []string) {
	item, err := common.ResolveItem(root.App.Wishlist(), args[0])
	if err != nil {
		root.Log.Fatalf("Error resolving item: %v", err)
	}

	if err := root.App.Wishlist().MarkPurchased(item.ID, planner.SystemClock().Now()); err != nil {
		root.Log.Fatalf("Error marking item purchased: %v", err)
	}
	root.Log.Infof("Marked %s as purchased", item.Name)
}
