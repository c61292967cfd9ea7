package store

import (
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"fjacquet/wishplan/internal/fileutils"
	"fjacquet/wishplan/internal/logging"
	"fjacquet/wishplan/internal/models"
	"fjacquet/wishplan/internal/planerror"
)

// DefaultWishlistFile is the file name used when no explicit path is given.
const DefaultWishlistFile = "wishlist.yaml"

// WishlistStore persists wishlist items in a YAML database. Items are held
// in memory after Load; mutations mark the store dirty and Save writes the
// file back only when something changed.
type WishlistStore struct {
	file   string
	logger logging.Logger

	mu     sync.RWMutex
	items  []models.WishlistItem
	loaded bool
	dirty  bool
}

// NewWishlistStore creates a store over the given file name or path. An
// empty file name falls back to DefaultWishlistFile.
func NewWishlistStore(file string, logger logging.Logger) *WishlistStore {
	if file == "" {
		file = DefaultWishlistFile
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &WishlistStore{file: file, logger: logger}
}

// Load reads the wishlist database. A missing file yields an empty wishlist,
// not an error. Records that fail validation abort the load so a corrupt
// file is never silently truncated.
func (s *WishlistStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *WishlistStore) loadLocked() error {
	filePath, err := FindDataFile(s.file)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("wishlist file not found, starting empty",
				logging.F(logging.FieldFile, s.file))
			s.items = nil
			s.loaded = true
			return nil
		}
		return fmt.Errorf("error resolving wishlist file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("error reading wishlist file: %w", err)
	}

	var doc wishlistFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("error parsing wishlist file: %w", err)
	}

	items := make([]models.WishlistItem, 0, len(doc.Items))
	for _, rec := range doc.Items {
		item, err := fromRecord(rec)
		if err != nil {
			return fmt.Errorf("invalid wishlist record %s: %w", rec.ID, err)
		}
		items = append(items, item)
	}

	s.items = items
	s.loaded = true
	s.dirty = false
	s.logger.Debug("loaded wishlist",
		logging.F(logging.FieldFile, filePath),
		logging.F(logging.FieldCount, len(items)))
	return nil
}

// Save writes the wishlist back to disk when it has unsaved changes.
func (s *WishlistStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}

	doc := wishlistFile{Items: make([]itemRecord, 0, len(s.items))}
	for _, item := range s.items {
		doc.Items = append(doc.Items, toRecord(item))
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error marshaling wishlist: %w", err)
	}

	filePath := writePath(s.file)
	if err := fileutils.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing wishlist file: %w", err)
	}

	s.dirty = false
	s.logger.Debug("saved wishlist",
		logging.F(logging.FieldFile, filePath),
		logging.F(logging.FieldCount, len(s.items)))
	return nil
}

// ensureLoaded lazily loads the database. Callers must hold s.mu.
func (s *WishlistStore) ensureLoaded() error {
	if s.loaded {
		return nil
	}
	return s.loadLocked()
}

// Add validates and stores a new item. The item ID must be unique.
func (s *WishlistStore) Add(item models.WishlistItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}

	for _, existing := range s.items {
		if existing.ID == item.ID {
			return planerror.NewInvalidInput("id", item.ID, "item already exists")
		}
	}

	s.items = append(s.items, item)
	s.dirty = true
	return nil
}

// Get returns the item with the given identity.
func (s *WishlistStore) Get(id string) (models.WishlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return models.WishlistItem{}, err
	}

	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.WishlistItem{}, planerror.NewNotFound("wishlist item", id)
}

// Update replaces an existing item by identity.
func (s *WishlistStore) Update(item models.WishlistItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}

	for i, existing := range s.items {
		if existing.ID == item.ID {
			s.items[i] = item
			s.dirty = true
			return nil
		}
	}
	return planerror.NewNotFound("wishlist item", item.ID)
}

// MarkPurchased flags an item as purchased and stamps the purchase date.
// Marking an already purchased item again is rejected.
func (s *WishlistStore) MarkPurchased(id string, when time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}

	for i, item := range s.items {
		if item.ID != id {
			continue
		}
		if item.Purchased {
			return planerror.NewInvalidInput("id", id, "item is already purchased")
		}
		item.Purchased = true
		item.PurchasedDate = &when
		s.items[i] = item
		s.dirty = true
		return nil
	}
	return planerror.NewNotFound("wishlist item", id)
}

// Delete removes an item by identity. Deleting an unknown or already deleted
// identity reports NotFound rather than silently succeeding, so repeated
// deletes are visible to the caller.
func (s *WishlistStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.dirty = true
			return nil
		}
	}
	return planerror.NewNotFound("wishlist item", id)
}

// All returns every item, purchased or not.
func (s *WishlistStore) All() ([]models.WishlistItem, error) {
	return s.filter(func(models.WishlistItem) bool { return true })
}

// Active returns the items not yet purchased.
func (s *WishlistStore) Active() ([]models.WishlistItem, error) {
	return s.filter(func(item models.WishlistItem) bool { return !item.Purchased })
}

// Purchased returns the items already purchased.
func (s *WishlistStore) Purchased() ([]models.WishlistItem, error) {
	return s.filter(func(item models.WishlistItem) bool { return item.Purchased })
}

func (s *WishlistStore) filter(keep func(models.WishlistItem) bool) ([]models.WishlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	var result []models.WishlistItem
	for _, item := range s.items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result, nil
}
