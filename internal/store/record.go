package store

import (
	"time"

	"fjacquet/wishplan/internal/models"
	"fjacquet/wishplan/internal/planerror"
)

// itemRecord is the on-disk shape of a wishlist item. Amounts are stored as
// decimal strings so the file stays human-editable and round-trips exactly.
type itemRecord struct {
	ID            string     `yaml:"id"`
	Name          string     `yaml:"name"`
	Price         string     `yaml:"price"`
	Currency      string     `yaml:"currency"`
	Priority      string     `yaml:"priority"`
	Category      string     `yaml:"category,omitempty"`
	URL           string     `yaml:"url,omitempty"`
	Notes         string     `yaml:"notes,omitempty"`
	CreatedAt     time.Time  `yaml:"created_at"`
	TargetDate    *time.Time `yaml:"target_date,omitempty"`
	Purchased     bool       `yaml:"purchased"`
	PurchasedDate *time.Time `yaml:"purchased_date,omitempty"`
}

// wishlistFile is the top-level document of the wishlist database.
type wishlistFile struct {
	Items []itemRecord `yaml:"items"`
}

func toRecord(item models.WishlistItem) itemRecord {
	return itemRecord{
		ID:            item.ID,
		Name:          item.Name,
		Price:         item.Price.Amount.String(),
		Currency:      item.Price.Currency,
		Priority:      string(item.Priority),
		Category:      item.Category,
		URL:           item.URL,
		Notes:         item.Notes,
		CreatedAt:     item.CreatedAt,
		TargetDate:    item.TargetDate,
		Purchased:     item.Purchased,
		PurchasedDate: item.PurchasedDate,
	}
}

func fromRecord(rec itemRecord) (models.WishlistItem, error) {
	price, err := models.NewMoneyFromString(rec.Price, rec.Currency)
	if err != nil {
		return models.WishlistItem{}, planerror.NewInvalidInput("price", rec.Price, err.Error())
	}

	item := models.WishlistItem{
		ID:            rec.ID,
		Name:          rec.Name,
		Price:         price,
		Priority:      models.Priority(rec.Priority),
		Category:      rec.Category,
		URL:           rec.URL,
		Notes:         rec.Notes,
		CreatedAt:     rec.CreatedAt,
		TargetDate:    rec.TargetDate,
		Purchased:     rec.Purchased,
		PurchasedDate: rec.PurchasedDate,
	}

	if err := item.Validate(); err != nil {
		return models.WishlistItem{}, err
	}
	return item, nil
}
