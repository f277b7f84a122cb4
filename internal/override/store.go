// Package override persists locally made order changes outside the remote
// store, keyed by order id. An override survives restarts and takes
// precedence over the remote value on merge.
package override

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pizzahouse/menu-client/internal/models"
)

const storageKey = "orderStatuses"

type Store interface {
	// ReadAll returns the persisted mapping. Absent or corrupt content
	// reads as an empty mapping, never an error.
	ReadAll() map[string]models.OrderOverride
	// WriteOne merges the non-nil fields into the entry for id and
	// persists the whole mapping. Last write wins per field.
	WriteOne(id string, o models.OrderOverride) error
}

type kvRecord struct {
	Key   string `gorm:"primaryKey"`
	Value []byte
}

func (kvRecord) TableName() string { return "kv_records" }

// SQLiteStore keeps the mapping under one namespaced key in an embedded
// database file. The mutex serializes read-modify-write within this
// process; concurrent processes can still lose updates.
type SQLiteStore struct {
	mu sync.Mutex
	db *gorm.DB
}

func Open(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open override store: %w", err)
	}
	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, fmt.Errorf("migrate override store: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) ReadAll() map[string]models.OrderOverride {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked()
}

func (s *SQLiteStore) readLocked() map[string]models.OrderOverride {
	overrides := map[string]models.OrderOverride{}
	var rec kvRecord
	if err := s.db.Where("key = ?", storageKey).First(&rec).Error; err != nil {
		return overrides
	}
	if err := json.Unmarshal(rec.Value, &overrides); err != nil {
		// corrupt content must not block rendering
		return map[string]models.OrderOverride{}
	}
	return overrides
}

func (s *SQLiteStore) WriteOne(id string, o models.OrderOverride) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.readLocked()
	cur := all[id]
	if o.Status != nil {
		cur.Status = o.Status
	}
	all[id] = cur

	buf, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode overrides: %w", err)
	}
	rec := kvRecord{Key: storageKey, Value: buf}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
		return fmt.Errorf("persist overrides: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
