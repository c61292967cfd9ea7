package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/wishplan/internal/logging"
)

func TestLoadCategoriesWithTopLevelKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yaml")
	content := `categories:
  - name: Electronics
    keywords: [laptop, camera, headphones]
  - name: Kitchen
    keywords: [espresso, blender]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s := NewCatalogStore(path, filepath.Join(dir, "mappings.yaml"), &logging.MockLogger{})
	rules, err := s.LoadCategories()
	require.NoError(t, err)

	require.Len(t, rules, 2)
	assert.Equal(t, "Electronics", rules[0].Name)
	assert.Contains(t, rules[0].Keywords, "camera")
}

func TestLoadCategoriesBareArrayFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yaml")
	content := `- name: Sports
  keywords: [bike]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s := NewCatalogStore(path, filepath.Join(dir, "mappings.yaml"), &logging.MockLogger{})
	rules, err := s.LoadCategories()
	require.NoError(t, err)

	require.Len(t, rules, 1)
	assert.Equal(t, "Sports", rules[0].Name)
}

func TestLoadCategoriesMissingFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	s := NewCatalogStore(filepath.Join(dir, "none.yaml"), filepath.Join(dir, "mappings.yaml"), &logging.MockLogger{})

	rules, err := s.LoadCategories()
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestNameMappingsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mappings.yaml")
	s := NewCatalogStore(filepath.Join(dir, "categories.yaml"), path, &logging.MockLogger{})

	mappings := map[string]string{
		"sony a7 iv":     "Electronics",
		"gaggia classic": "Kitchen",
	}
	require.NoError(t, s.SaveNameMappings(mappings))

	loaded, err := s.LoadNameMappings()
	require.NoError(t, err)
	assert.Equal(t, mappings, loaded)
}

func TestLoadNameMappingsMissingFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	s := NewCatalogStore(filepath.Join(dir, "categories.yaml"), filepath.Join(dir, "none.yaml"), &logging.MockLogger{})

	mappings, err := s.LoadNameMappings()
	require.NoError(t, err)
	assert.Empty(t, mappings)
}
