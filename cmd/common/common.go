// Package common holds helpers shared by the command packages.
package common

import (
	"strings"

	"fjacquet/wishplan/internal/models"
	"fjacquet/wishplan/internal/planerror"
	"fjacquet/wishplan/internal/store"
)

// ResolveItem finds a wishlist item by ID first, then by case-insensitive
// name. Name lookup fails when several items share the name.
func ResolveItem(s *store.WishlistStore, key string) (models.WishlistItem, error) {
	item, err := s.Get(key)
	if err == nil {
		return item, nil
	}
	if !planerror.IsNotFound(err) {
		return models.WishlistItem{}, err
	}

	items, err := s.All()
	if err != nil {
		return models.WishlistItem{}, err
	}

	var matches []models.WishlistItem
	for _, it := range items {
		if strings.EqualFold(it.Name, key) {
			matches = append(matches, it)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.WishlistItem{}, planerror.NewNotFound("wishlist item", key)
	default:
		return models.WishlistItem{}, planerror.NewInvalidInput("item", key,
			"name matches several items, use the item ID")
	}
}

// MoneyFlag parses a monetary flag value in the given currency. An empty
// value is a zero amount, not an error.
func MoneyFlag(value, currency, field string) (models.Money, error) {
	if value == "" {
		return models.ZeroMoney(currency), nil
	}
	m, err := models.NewMoneyFromString(value, currency)
	if err != nil {
		return models.Money{}, planerror.NewInvalidInput(field, value, "must be a decimal amount")
	}
	return m, nil
}
