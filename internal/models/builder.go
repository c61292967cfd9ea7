package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fjacquet/wishplan/internal/currencyutils"
	"fjacquet/wishplan/internal/dateutils"
	"fjacquet/wishplan/internal/planerror"
)

// WishlistItemBuilder provides a fluent API for constructing wishlist items.
// The first error encountered short-circuits the remaining calls and is
// returned from Build.
type WishlistItemBuilder struct {
	item WishlistItem
	err  error
}

// NewWishlistItemBuilder creates a builder with a fresh ID, the default
// currency and medium priority.
func NewWishlistItemBuilder() *WishlistItemBuilder {
	return &WishlistItemBuilder{
		item: WishlistItem{
			ID:        uuid.NewString(),
			Price:     ZeroMoney(DefaultCurrency),
			Priority:  PriorityMedium,
			CreatedAt: time.Now(),
		},
	}
}

// WithID overrides the generated item ID.
func (b *WishlistItemBuilder) WithID(id string) *WishlistItemBuilder {
	if b.err != nil {
		return b
	}
	if id == "" {
		b.err = planerror.NewInvalidInput("id", "", "must not be empty")
		return b
	}
	b.item.ID = id
	return b
}

// WithName sets the item name.
func (b *WishlistItemBuilder) WithName(name string) *WishlistItemBuilder {
	if b.err != nil {
		return b
	}
	b.item.Name = name
	return b
}

// WithPrice sets the target price.
func (b *WishlistItemBuilder) WithPrice(price Money) *WishlistItemBuilder {
	if b.err != nil {
		return b
	}
	b.item.Price = price
	return b
}

// WithPriceFromString parses a price string such as "$1,299.00".
func (b *WishlistItemBuilder) WithPriceFromString(amount, currency string) *WishlistItemBuilder {
	if b.err != nil {
		return b
	}
	dec, err := currencyutils.ParseAmount(amount)
	if err != nil {
		b.err = planerror.NewInvalidInput("price", amount, err.Error())
		return b
	}
	b.item.Price = NewMoney(dec, currency)
	return b
}

// WithPriceFromFloat sets the price from a float64 value.
func (b *WishlistItemBuilder) WithPriceFromFloat(amount float64, currency string) *WishlistItemBuilder {
	if b.err != nil {
		return b
	}
	b.item.Price = NewMoney(decimal.NewFromFloat(amount), currency)
	return b
}

// WithPriority sets the priority from its string form.
func (b *WishlistItemBuilder) WithPriority(priority string) *WishlistItemBuilder {
	if b.err != nil {
		return b
	}
	p, err := ParsePriority(priority)
	if err != nil {
		b.err = err
		return b
	}
	b.item.Priority = p
	return b
}

// WithCategory sets the category tag.
func (b *WishlistItemBuilder) WithCategory(category string) *WishlistItemBuilder {
	if b.err != nil {
		return b
	}
	b.item.Category = category
	return b
}

// WithURL sets the optional product URL.
func (b *WishlistItemBuilder) WithURL(url string) *WishlistItemBuilder {
	if b.err != nil {
		return b
	}
	b.item.URL = url
	return b
}

// WithNotes sets the optional notes.
func (b *WishlistItemBuilder) WithNotes(notes string) *WishlistItemBuilder {
	if b.err != nil {
		return b
	}
	b.item.Notes = notes
	return b
}

// WithCreatedAt overrides the creation timestamp.
func (b *WishlistItemBuilder) WithCreatedAt(createdAt time.Time) *WishlistItemBuilder {
	if b.err != nil {
		return b
	}
	b.item.CreatedAt = createdAt
	return b
}

// WithTargetDate sets the optional target purchase date.
func (b *WishlistItemBuilder) WithTargetDate(target time.Time) *WishlistItemBuilder {
	if b.err != nil {
		return b
	}
	b.item.TargetDate = &target
	return b
}

// WithTargetDateFromString parses and sets the target purchase date.
func (b *WishlistItemBuilder) WithTargetDateFromString(target string) *WishlistItemBuilder {
	if b.err != nil {
		return b
	}
	parsed, _, err := dateutils.ParseDate(target)
	if err != nil {
		b.err = planerror.NewInvalidInput("target_date", target, "unrecognized date format")
		return b
	}
	b.item.TargetDate = &parsed
	return b
}

// Build validates and returns the constructed item.
func (b *WishlistItemBuilder) Build() (WishlistItem, error) {
	if b.err != nil {
		return WishlistItem{}, b.err
	}
	if err := b.item.Validate(); err != nil {
		return WishlistItem{}, err
	}
	return b.item, nil
}
