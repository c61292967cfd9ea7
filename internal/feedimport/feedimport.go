// Package feedimport converts XML deals feeds into wishlist items. A feed is
// a flat list of <deal> entries under a <deals> root:
//
//	<deals>
//	  <deal>
//	    <title>Sony A7 IV</title>
//	    <url>https://example.com/a7iv</url>
//	    <price currency="USD">2499.00</price>
//	    <category>Electronics</category>
//	    <priority>high</priority>
//	    <notes>body only</notes>
//	  </deal>
//	</deals>
//
// Entries that fail validation are skipped with a warning; a feed with no
// usable entries at all is rejected.
package feedimport

import (
	"io"

	"gopkg.in/xmlpath.v2"

	"fjacquet/wishplan/internal/logging"
	"fjacquet/wishplan/internal/models"
	"fjacquet/wishplan/internal/planerror"
	"fjacquet/wishplan/internal/xmlutils"
)

var (
	dealPath     = xmlpath.MustCompile("/deals/deal")
	titlePath    = xmlpath.MustCompile("title")
	urlPath      = xmlpath.MustCompile("url")
	pricePath    = xmlpath.MustCompile("price")
	currencyPath = xmlpath.MustCompile("price/@currency")
	categoryPath = xmlpath.MustCompile("category")
	priorityPath = xmlpath.MustCompile("priority")
	notesPath    = xmlpath.MustCompile("notes")
)

// Importer parses deals feeds into validated wishlist items.
type Importer struct {
	logger logging.Logger
}

// NewImporter creates an Importer.
func NewImporter(logger logging.Logger) *Importer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Importer{logger: logger}
}

// ImportFile reads a deals feed from disk.
func (im *Importer) ImportFile(path string) ([]models.WishlistItem, error) {
	root, err := xmlutils.ParseFile(path)
	if err != nil {
		return nil, &planerror.FeedError{Source: path, Msg: "reading feed", Err: err}
	}
	return im.importRoot(root, path)
}

// Import parses a deals feed. source is used in errors and log output only.
func (im *Importer) Import(r io.Reader, source string) ([]models.WishlistItem, error) {
	root, err := xmlutils.Parse(r)
	if err != nil {
		return nil, &planerror.FeedError{Source: source, Msg: "parsing XML", Err: err}
	}
	return im.importRoot(root, source)
}

func (im *Importer) importRoot(root *xmlpath.Node, source string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	seen := 0

	iter := dealPath.Iter(root)
	for iter.Next() {
		seen++
		node := iter.Node()

		item, err := im.itemFromDeal(node)
		if err != nil {
			im.logger.WithError(err).Warn("skipping feed entry",
				logging.F(logging.FieldFile, source))
			continue
		}
		items = append(items, item)
	}

	if seen == 0 {
		return nil, &planerror.FeedError{Source: source, Msg: "no deal entries found"}
	}
	if len(items) == 0 {
		return nil, &planerror.FeedError{Source: source, Msg: "no usable deal entries"}
	}

	im.logger.Info("imported deals feed",
		logging.F(logging.FieldFile, source),
		logging.F(logging.FieldCount, len(items)))
	return items, nil
}

func (im *Importer) itemFromDeal(node *xmlpath.Node) (models.WishlistItem, error) {
	builder := models.NewWishlistItemBuilder().
		WithName(xmlutils.StringAt(node, titlePath)).
		WithPriceFromString(xmlutils.StringAt(node, pricePath), xmlutils.StringAt(node, currencyPath)).
		WithURL(xmlutils.StringAt(node, urlPath)).
		WithCategory(xmlutils.StringAt(node, categoryPath)).
		WithNotes(xmlutils.StringAt(node, notesPath))

	if priority := xmlutils.StringAt(node, priorityPath); priority != "" {
		builder = builder.WithPriority(priority)
	}

	return builder.Build()
}
