package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fjacquet/wishplan/internal/fileutils"
	"fjacquet/wishplan/internal/logging"
	"fjacquet/wishplan/internal/models"
)

// Default file names for the category databases.
const (
	DefaultCategoriesFile = "categories.yaml"
	DefaultMappingsFile   = "mappings.yaml"
)

// CatalogStore manages loading and saving of the category databases used by
// the suggester: the keyword rules and the learned item-name mappings.
type CatalogStore struct {
	CategoriesFile string
	MappingsFile   string
	logger         logging.Logger
}

// NewCatalogStore creates a store for category-related data.
func NewCatalogStore(categoriesFile, mappingsFile string, logger logging.Logger) *CatalogStore {
	if categoriesFile == "" {
		categoriesFile = DefaultCategoriesFile
	}
	if mappingsFile == "" {
		mappingsFile = DefaultMappingsFile
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &CatalogStore{
		CategoriesFile: categoriesFile,
		MappingsFile:   mappingsFile,
		logger:         logger,
	}
}

// LoadCategories loads the category keyword rules. A missing file yields an
// empty rule set, not an error.
func (s *CatalogStore) LoadCategories() ([]models.CategoryRule, error) {
	filePath, err := FindDataFile(s.CategoriesFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("categories file not found",
				logging.F(logging.FieldFile, s.CategoriesFile))
			return []models.CategoryRule{}, nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var catalog models.CategoryCatalog
	if err := yaml.Unmarshal(data, &catalog); err == nil && len(catalog.Categories) > 0 {
		return catalog.Categories, nil
	}

	// Fallback: a bare array without the top-level key.
	var rules []models.CategoryRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}
	return rules, nil
}

// LoadNameMappings loads the learned item-name to category mappings. A
// missing file yields an empty map, not an error.
func (s *CatalogStore) LoadNameMappings() (map[string]string, error) {
	filePath, err := FindDataFile(s.MappingsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("error resolving mappings file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading mappings file: %w", err)
	}

	var mappings map[string]string
	if err := yaml.Unmarshal(data, &mappings); err != nil {
		return nil, fmt.Errorf("error parsing mappings file: %w", err)
	}
	if mappings == nil {
		mappings = map[string]string{}
	}
	return mappings, nil
}

// SaveNameMappings writes the learned mappings back to disk.
func (s *CatalogStore) SaveNameMappings(mappings map[string]string) error {
	data, err := yaml.Marshal(mappings)
	if err != nil {
		return fmt.Errorf("error marshaling mappings: %w", err)
	}

	filePath := writePath(s.MappingsFile)
	if err := fileutils.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing mappings file: %w", err)
	}

	s.logger.Debug("saved name mappings",
		logging.F(logging.FieldFile, filePath),
		logging.F(logging.FieldCount, len(mappings)))
	return nil
}
