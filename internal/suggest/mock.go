package suggest

import "context"

// MockAIClient is a deterministic AIClient for tests.
type MockAIClient struct {
	Category string
	Err      error
	Queries  []ItemQuery
}

// SuggestCategory records the query and returns the configured result.
func (m *MockAIClient) SuggestCategory(_ context.Context, query ItemQuery) (string, error) {
	m.Queries = append(m.Queries, query)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Category, nil
}
