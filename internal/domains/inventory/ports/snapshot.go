package ports

import (
	"context"

	"github.com/labops/labstock/internal/domains/inventory/domain"
)

// SnapshotSlot is the single named slot every gateway persists under.
const SnapshotSlot = "labInventoryData"

// SnapshotStore is the persistence gateway: it serializes the full
// registry contents as one ordered list under one named slot. There is
// no partial or incremental persistence.
type SnapshotStore interface {
	// Save replaces the slot with the given items, preserving order.
	Save(ctx context.Context, items []domain.Item) error
	// Load returns the persisted items in order. The bool is false
	// when the slot has never been written.
	Load(ctx context.Context) ([]domain.Item, bool, error)
}
