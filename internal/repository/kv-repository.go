package repository

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Gayatri-ch/UniPay/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Keys used inside a session namespace.
const (
	KeySelectedBank = "selectedBank"
	KeyLinkedBanks  = "linkedBanks"
	KeyBankConsent  = "bankConsent"
)

// KeyValueStore is the persistence boundary. Write is synchronous; there are
// no guarantees across keys.
type KeyValueStore interface {
	Read(key string) ([]byte, bool, error)
	Write(key string, value []byte) error
}

type KVRepository interface {
	Namespace(ns string) KeyValueStore
}

type kvRepository struct {
	db *gorm.DB
}

func NewKVRepository(db *gorm.DB) KVRepository {
	return &kvRepository{db: db}
}

func (r *kvRepository) Namespace(ns string) KeyValueStore {
	return &gormKV{db: r.db, ns: ns}
}

type gormKV struct {
	db *gorm.DB
	ns string
}

func (s *gormKV) Read(key string) ([]byte, bool, error) {
	var entry domain.KVEntry
	err := s.db.Where("namespace = ? AND entry_key = ?", s.ns, key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s/%s: %w", s.ns, key, err)
	}
	return entry.Value, true, nil
}

func (s *gormKV) Write(key string, value []byte) error {
	entry := domain.KVEntry{Namespace: s.ns, Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}, {Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("write %s/%s: %w", s.ns, key, err)
	}
	return nil
}

// memoryKVRepository keeps everything in process. Used by tests and when no
// database is configured.
type memoryKVRepository struct {
	mu   sync.Mutex
	data map[string]map[string][]byte
}

func NewMemoryKVRepository() KVRepository {
	return &memoryKVRepository{data: make(map[string]map[string][]byte)}
}

func (r *memoryKVRepository) Namespace(ns string) KeyValueStore {
	return &memoryKV{repo: r, ns: ns}
}

type memoryKV struct {
	repo *memoryKVRepository
	ns   string
}

func (s *memoryKV) Read(key string) ([]byte, bool, error) {
	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()
	v, ok := s.repo.data[s.ns][key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *memoryKV) Write(key string, value []byte) error {
	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()
	m, ok := s.repo.data[s.ns]
	if !ok {
		m = make(map[string][]byte)
		s.repo.data[s.ns] = m
	}
	m[key] = append([]byte(nil), value...)
	return nil
}
