package models

import (
	"fmt"
	"time"

	"fjacquet/wishplan/internal/planerror"
)

// Priority orders wishlist items by how urgently the user wants them.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var priorityRanks = map[Priority]int{
	PriorityLow:    1,
	PriorityMedium: 2,
	PriorityHigh:   3,
	PriorityUrgent: 4,
}

// ParsePriority converts a string to a Priority, rejecting unknown values.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if _, ok := priorityRanks[p]; !ok {
		return "", planerror.NewInvalidInput("priority", s, "must be one of low, medium, high, urgent")
	}
	return p, nil
}

// Rank returns the ordering value of the priority; higher means more urgent.
// Unknown priorities rank below low.
func (p Priority) Rank() int {
	return priorityRanks[p]
}

// Valid reports whether the priority is one of the known values.
func (p Priority) Valid() bool {
	_, ok := priorityRanks[p]
	return ok
}

// WishlistItem is a product the user intends to buy.
//
// Invariants enforced by Validate: Price is strictly positive, and
// PurchasedDate is set if and only if Purchased is true.
type WishlistItem struct {
	ID            string     `json:"id" yaml:"id"`
	Name          string     `json:"name" yaml:"name"`
	Price         Money      `json:"price" yaml:"price"`
	Priority      Priority   `json:"priority" yaml:"priority"`
	Category      string     `json:"category" yaml:"category"`
	URL           string     `json:"url,omitempty" yaml:"url,omitempty"`
	Notes         string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at" yaml:"created_at"`
	TargetDate    *time.Time `json:"target_date,omitempty" yaml:"target_date,omitempty"`
	Purchased     bool       `json:"purchased" yaml:"purchased"`
	PurchasedDate *time.Time `json:"purchased_date,omitempty" yaml:"purchased_date,omitempty"`
}

// Validate checks the item invariants. Items are validated when they enter
// the system, never at planning time.
func (i WishlistItem) Validate() error {
	if i.ID == "" {
		return planerror.NewInvalidInput("id", "", "must not be empty")
	}
	if i.Name == "" {
		return planerror.NewInvalidInput("name", "", "must not be empty")
	}
	if !i.Price.IsPositive() {
		return planerror.NewInvalidInput("price", i.Price.String(), "must be positive")
	}
	if !i.Priority.Valid() {
		return planerror.NewInvalidInput("priority", string(i.Priority), "must be one of low, medium, high, urgent")
	}
	if i.Purchased && i.PurchasedDate == nil {
		return planerror.NewInvalidInput("purchased_date", "", "must be set when item is purchased")
	}
	if !i.Purchased && i.PurchasedDate != nil {
		return planerror.NewInvalidInput("purchased_date",
			i.PurchasedDate.Format(time.RFC3339), "must not be set when item is not purchased")
	}
	return nil
}

// String renders a short one-line description for logs and CLI output.
func (i WishlistItem) String() string {
	return fmt.Sprintf("%s (%s, %s)", i.Name, i.Price, i.Priority)
}
