package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the snapshot slots. Intended to replace
// adapter-level automigrate in deployments that manage schema centrally.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(&snapshotRecord{})
}

// Snapshot schema mirrors the inventory Postgres adapter: one row per
// slot holding the full serialized item list plus an id summary column.
type snapshotRecord struct {
	Slot      string         `gorm:"primaryKey;column:slot;size:128"`
	Items     []itemRecord   `gorm:"column:items;serializer:json"`
	ItemIDs   pq.StringArray `gorm:"column:item_ids;type:text[]"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

type itemRecord struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	UnitPrice       float64 `json:"unitPrice"`
	Quantity        int     `json:"quantity"`
	InitialQuantity int     `json:"initialQuantity"`
}

func (snapshotRecord) TableName() string { return "inventory_snapshots" }
