// Package suggest assigns categories to wishlist items using three layers:
// a learned item-name mapping database, keyword rules from the categories
// file, and an optional AI fallback.
package suggest

import (
	"context"
	"strings"
	"sync"

	"fjacquet/wishplan/internal/logging"
	"fjacquet/wishplan/internal/models"
	"fjacquet/wishplan/internal/store"
)

// DefaultFallbackCategory is returned when no layer produces a category.
const DefaultFallbackCategory = "Uncategorized"

// Suggester picks categories for wishlist items and learns from the results.
type Suggester struct {
	mu           sync.RWMutex
	rules        []models.CategoryRule
	nameMappings map[string]string
	dirty        bool

	catalog  *store.CatalogStore
	aiClient AIClient
	fallback string
	logger   logging.Logger
}

// New creates a Suggester backed by the given catalog store. aiClient may be
// nil, in which case the AI layer is skipped.
func New(catalog *store.CatalogStore, aiClient AIClient, fallback string, logger logging.Logger) *Suggester {
	if fallback == "" {
		fallback = DefaultFallbackCategory
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	s := &Suggester{
		nameMappings: make(map[string]string),
		catalog:      catalog,
		aiClient:     aiClient,
		fallback:     fallback,
		logger:       logger,
	}

	rules, err := catalog.LoadCategories()
	if err != nil {
		logger.WithError(err).Warn("failed to load categories")
	} else {
		s.rules = rules
	}

	mappings, err := catalog.LoadNameMappings()
	if err != nil {
		logger.WithError(err).Warn("failed to load name mappings")
	} else {
		for name, category := range mappings {
			s.nameMappings[strings.ToLower(name)] = category
		}
	}

	return s
}

// Categories returns the known category names.
func (s *Suggester) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.rules))
	for _, rule := range s.rules {
		names = append(names, rule.Name)
	}
	return names
}

// SuggestCategory resolves a category for an item name: learned mapping
// first, then keyword rules, then the AI, then the fallback category.
// AI results are learned so the next lookup is local.
func (s *Suggester) SuggestCategory(ctx context.Context, query ItemQuery) (string, error) {
	key := strings.ToLower(strings.TrimSpace(query.Name))
	if key == "" {
		return s.fallback, nil
	}

	if category, ok := s.lookupMapping(key); ok {
		s.logger.Debug("category from learned mapping",
			logging.F(logging.FieldItemName, query.Name),
			logging.F(logging.FieldCategory, category))
		return category, nil
	}

	if category, ok := s.matchKeywords(key); ok {
		s.logger.Debug("category from keyword rules",
			logging.F(logging.FieldItemName, query.Name),
			logging.F(logging.FieldCategory, category))
		s.learn(key, category)
		return category, nil
	}

	if s.aiClient != nil {
		query.Categories = s.Categories()
		category, err := s.aiClient.SuggestCategory(ctx, query)
		if err != nil {
			s.logger.WithError(err).Warn("AI suggestion failed, using fallback",
				logging.F(logging.FieldItemName, query.Name))
			return s.fallback, nil
		}
		if category != "" {
			s.learn(key, category)
			return category, nil
		}
	}

	return s.fallback, nil
}

func (s *Suggester) lookupMapping(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	category, ok := s.nameMappings[key]
	return category, ok
}

func (s *Suggester) matchKeywords(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rule := range s.rules {
		for _, keyword := range rule.Keywords {
			if keyword != "" && strings.Contains(key, strings.ToLower(keyword)) {
				return rule.Name, true
			}
		}
	}
	return "", false
}

func (s *Suggester) learn(key, category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nameMappings[key] != category {
		s.nameMappings[key] = category
		s.dirty = true
	}
}

// SaveMappings persists the learned mappings when they changed.
func (s *Suggester) SaveMappings() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}
	if err := s.catalog.SaveNameMappings(s.nameMappings); err != nil {
		return err
	}
	s.dirty = false
	return nil
}
