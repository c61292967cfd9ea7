// Package remove handles deleting items from the wishlist.
package remove

import (
	"github.com/spf13/cobra"

	"fjacquet/wishplan/cmd/common"
	"fjacquet/wishplan/cmd/root"
)

// Cmd represents the remove command
var Cmd = &cobra.Command{
	Use:   "remove <item-id-or-name>",
	Short: "Remove an item from the wishlist",
	Long:  `Remove an item from the wishlist permanently.`,
	Args:  cobra.ExactArgs(1),
	Run:   removeFunc,
}

func removeFunc(cmd *cobra.Command, args []string) {
	item, err := common.ResolveItem(root.App.Wishlist(), args[0])
	if err != nil {
		root.Log.Fatalf("Error resolving item: %v", err)
	}

	if err := root.App.Wishlist().Delete(item.ID); err != nil {
		root.Log.Fatalf("Error removing item: %v", err)
	}
	root.Log.Infof("Removed %s (%s)", item.Name, item.ID)
}
