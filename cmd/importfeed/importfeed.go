// Package importfeed handles importing wishlist items from XML deal feeds.
package importfeed

import (
	"github.com/spf13/cobra"

	"fjacquet/wishplan/cmd/root"
	"fjacquet/wishplan/internal/feedimport"
	"fjacquet/wishplan/internal/logging"
	"fjacquet/wishplan/internal/validation"
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import wishlist items from an XML deal feed",
	Long: `Import wishlist items from an XML deal feed. Entries that cannot be
parsed are skipped with a warning; valid entries are added to the wishlist.`,
	Run: importFunc,
}

func importFunc(cmd *cobra.Command, args []string) {
	if err := validation.ValidateInputFile(root.SharedFlags.Input); err != nil {
		root.Log.Fatalf("Invalid input feed: %v", err)
	}

	importer := feedimport.NewImporter(root.App.Logger())
	items, err := importer.ImportFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error importing feed: %v", err)
	}

	added := 0
	for _, item := range items {
		if err := root.App.Wishlist().Add(item); err != nil {
			root.App.Logger().Warn("Skipping feed item",
				logging.F(logging.FieldItemName, item.Name),
				logging.F(logging.FieldReason, err.Error()))
			continue
		}
		added++
	}
	root.Log.Infof("Imported %d of %d feed items from %s", added, len(items), root.SharedFlags.Input)
}
