package suggest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/wishplan/internal/logging"
	"fjacquet/wishplan/internal/store"
)

func testCatalog(t *testing.T) *store.CatalogStore {
	t.Helper()
	dir := t.TempDir()
	categories := `categories:
  - name: Electronics
    keywords: [camera, laptop, headphones]
  - name: Kitchen
    keywords: [espresso, blender]
`
	categoriesPath := filepath.Join(dir, "categories.yaml")
	require.NoError(t, os.WriteFile(categoriesPath, []byte(categories), 0644))

	return store.NewCatalogStore(categoriesPath, filepath.Join(dir, "mappings.yaml"), &logging.MockLogger{})
}

func TestSuggestFromKeywordRules(t *testing.T) {
	s := New(testCatalog(t), nil, "", &logging.MockLogger{})

	category, err := s.SuggestCategory(context.Background(), ItemQuery{Name: "Sony mirrorless camera"})
	require.NoError(t, err)
	assert.Equal(t, "Electronics", category)
}

func TestSuggestLearnsKeywordMatches(t *testing.T) {
	catalog := testCatalog(t)
	s := New(catalog, nil, "", &logging.MockLogger{})

	_, err := s.SuggestCategory(context.Background(), ItemQuery{Name: "Espresso grinder"})
	require.NoError(t, err)
	require.NoError(t, s.SaveMappings())

	mappings, err := catalog.LoadNameMappings()
	require.NoError(t, err)
	assert.Equal(t, "Kitchen", mappings["espresso grinder"])
}

func TestSuggestPrefersLearnedMapping(t *testing.T) {
	catalog := testCatalog(t)
	require.NoError(t, catalog.SaveNameMappings(map[string]string{
		"mystery box": "Collectibles",
	}))

	ai := &MockAIClient{Category: "Electronics"}
	s := New(catalog, ai, "", &logging.MockLogger{})

	category, err := s.SuggestCategory(context.Background(), ItemQuery{Name: "Mystery Box"})
	require.NoError(t, err)
	assert.Equal(t, "Collectibles", category)
	assert.Empty(t, ai.Queries, "AI must not be consulted when a mapping exists")
}

func TestSuggestFallsBackToAI(t *testing.T) {
	ai := &MockAIClient{Category: "Kitchen"}
	s := New(testCatalog(t), ai, "", &logging.MockLogger{})

	category, err := s.SuggestCategory(context.Background(), ItemQuery{Name: "Moka pot"})
	require.NoError(t, err)
	assert.Equal(t, "Kitchen", category)

	require.Len(t, ai.Queries, 1)
	assert.Contains(t, ai.Queries[0].Categories, "Electronics")

	// The AI result is learned: a second lookup stays local.
	category, err = s.SuggestCategory(context.Background(), ItemQuery{Name: "Moka pot"})
	require.NoError(t, err)
	assert.Equal(t, "Kitchen", category)
	assert.Len(t, ai.Queries, 1)
}

func TestSuggestAIErrorUsesFallback(t *testing.T) {
	ai := &MockAIClient{Err: errors.New("quota exceeded")}
	s := New(testCatalog(t), ai, "Other", &logging.MockLogger{})

	category, err := s.SuggestCategory(context.Background(), ItemQuery{Name: "Something obscure"})
	require.NoError(t, err)
	assert.Equal(t, "Other", category)
}

func TestSuggestWithoutAIUsesFallback(t *testing.T) {
	s := New(testCatalog(t), nil, "", &logging.MockLogger{})

	category, err := s.SuggestCategory(context.Background(), ItemQuery{Name: "Something obscure"})
	require.NoError(t, err)
	assert.Equal(t, DefaultFallbackCategory, category)
}

func TestExtractCategory(t *testing.T) {
	known := []string{"Electronics", "Kitchen"}

	assert.Equal(t, "Kitchen", extractCategory("Category: Kitchen", known))
	assert.Equal(t, "Electronics", extractCategory("it looks like electronics to me", known))
	assert.Empty(t, extractCategory("no idea", known))
}
