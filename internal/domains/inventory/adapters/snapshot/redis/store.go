// Package redis persists the inventory snapshot as one JSON value
// under the slot key.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/labops/labstock/internal/domains/inventory/domain"
	"github.com/labops/labstock/internal/domains/inventory/ports"
)

var _ ports.SnapshotStore = (*Store)(nil)

// Store is a Redis-backed snapshot store.
type Store struct {
	client *redis.Client
}

// NewStore wraps an already-connected client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

type itemRecord struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	UnitPrice       float64 `json:"unitPrice"`
	Quantity        int     `json:"quantity"`
	InitialQuantity int     `json:"initialQuantity"`
}

// Save replaces the slot with the given items, preserving order. The
// value has no TTL: the slot lives until the next save overwrites it.
func (s *Store) Save(ctx context.Context, items []domain.Item) error {
	records := make([]itemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, itemRecord{
			ID:              item.ID,
			Name:            item.Name,
			UnitPrice:       item.UnitPrice,
			Quantity:        item.Quantity,
			InitialQuantity: item.InitialQuantity,
		})
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode inventory snapshot: %w", err)
	}
	if err := s.client.Set(ctx, ports.SnapshotSlot, payload, 0).Err(); err != nil {
		return fmt.Errorf("write inventory snapshot: %w", err)
	}
	return nil
}

// Load returns the persisted items in order; the bool is false when
// the slot key is absent.
func (s *Store) Load(ctx context.Context) ([]domain.Item, bool, error) {
	payload, err := s.client.Get(ctx, ports.SnapshotSlot).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read inventory snapshot: %w", err)
	}
	var records []itemRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, false, fmt.Errorf("decode inventory snapshot: %w", err)
	}
	items := make([]domain.Item, 0, len(records))
	for _, record := range records {
		item, err := domain.RestoreItem(record.ID, record.Name, record.UnitPrice, record.Quantity, record.InitialQuantity)
		if err != nil {
			return nil, false, fmt.Errorf("restore item %s: %w", record.ID, err)
		}
		items = append(items, *item)
	}
	return items, true, nil
}
