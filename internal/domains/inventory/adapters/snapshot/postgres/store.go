// Package postgres persists the inventory snapshot as one JSON
// document row per slot, using GORM-mapped columns.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/labops/labstock/internal/domains/inventory/domain"
	"github.com/labops/labstock/internal/domains/inventory/ports"
)

var _ ports.SnapshotStore = (*Store)(nil)

// Store is a PostgreSQL-backed snapshot store. The caller owns the DB
// lifecycle.
type Store struct {
	db *gorm.DB
}

// NewStore wires the store and ensures the slot table exists.
func NewStore(db *gorm.DB) *Store {
	store := &Store{db: db}
	if db != nil {
		if err := db.AutoMigrate(&snapshotRecord{}); err != nil {
			log.Printf("postgres snapshot migration failed: %v", err)
		}
	}
	return store
}

type itemRecord struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	UnitPrice       float64 `json:"unitPrice"`
	Quantity        int     `json:"quantity"`
	InitialQuantity int     `json:"initialQuantity"`
}

type snapshotRecord struct {
	Slot      string         `gorm:"primaryKey;column:slot;size:128"`
	Items     []itemRecord   `gorm:"column:items;serializer:json"`
	ItemIDs   pq.StringArray `gorm:"column:item_ids;type:text[]"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (snapshotRecord) TableName() string { return "inventory_snapshots" }

// Save upserts the slot row with the full item list, preserving order.
func (s *Store) Save(ctx context.Context, items []domain.Item) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	record := snapshotRecord{
		Slot:    ports.SnapshotSlot,
		Items:   make([]itemRecord, 0, len(items)),
		ItemIDs: make(pq.StringArray, 0, len(items)),
	}
	for _, item := range items {
		record.Items = append(record.Items, itemRecord{
			ID:              item.ID,
			Name:            item.Name,
			UnitPrice:       item.UnitPrice,
			Quantity:        item.Quantity,
			InitialQuantity: item.InitialQuantity,
		})
		record.ItemIDs = append(record.ItemIDs, item.ID)
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot"}},
			DoUpdates: clause.AssignmentColumns([]string{"items", "item_ids", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return fmt.Errorf("write inventory snapshot: %w", err)
	}
	return nil
}

// Load returns the persisted items in order; the bool is false when
// the slot row is absent.
func (s *Store) Load(ctx context.Context) ([]domain.Item, bool, error) {
	if err := s.ensureDB(); err != nil {
		return nil, false, err
	}
	var record snapshotRecord
	err := s.db.WithContext(ctx).First(&record, "slot = ?", ports.SnapshotSlot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read inventory snapshot: %w", err)
	}
	items := make([]domain.Item, 0, len(record.Items))
	for _, rec := range record.Items {
		item, err := domain.RestoreItem(rec.ID, rec.Name, rec.UnitPrice, rec.Quantity, rec.InitialQuantity)
		if err != nil {
			return nil, false, fmt.Errorf("restore item %s: %w", rec.ID, err)
		}
		items = append(items, *item)
	}
	return items, true, nil
}

func (s *Store) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres snapshot store is not configured")
	}
	return nil
}
