package suggest

import "context"

// ItemQuery carries the details the AI needs to pick a category.
type ItemQuery struct {
	Name       string
	Notes      string
	Price      string
	Categories []string
}

// AIClient is the interface to an AI-based category picker. The abstraction
// keeps the suggestion logic testable without external API calls and leaves
// room for other providers.
type AIClient interface {
	// SuggestCategory returns the category the AI picked for the item, which
	// should be one of the supplied category names.
	SuggestCategory(ctx context.Context, query ItemQuery) (string, error)
}
