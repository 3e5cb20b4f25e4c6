// Package file persists the inventory snapshot as a single JSON
// document on local disk, the closest server-side rendering of the
// original single key-value slot.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/labops/labstock/internal/domains/inventory/domain"
	"github.com/labops/labstock/internal/domains/inventory/ports"
)

var _ ports.SnapshotStore = (*Store)(nil)

// Store writes the whole snapshot atomically via a temp file rename.
type Store struct {
	path string
}

// NewStore builds a file-backed snapshot store at the given path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("snapshot file path is required")
	}
	return &Store{path: path}, nil
}

type itemRecord struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	UnitPrice       float64 `json:"unitPrice"`
	Quantity        int     `json:"quantity"`
	InitialQuantity int     `json:"initialQuantity"`
}

type document struct {
	Slot  string       `json:"slot"`
	Items []itemRecord `json:"items"`
}

// Save replaces the slot with the given items, preserving order.
func (s *Store) Save(_ context.Context, items []domain.Item) error {
	doc := document{Slot: ports.SnapshotSlot, Items: toRecords(items)}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode inventory snapshot: %w", err)
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".labstock-snapshot-*")
	if err != nil {
		return fmt.Errorf("stage inventory snapshot: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write inventory snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("flush inventory snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("commit inventory snapshot: %w", err)
	}
	return nil
}

// Load returns the persisted items in order; the bool is false when
// the file has never been written.
func (s *Store) Load(_ context.Context) ([]domain.Item, bool, error) {
	payload, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read inventory snapshot: %w", err)
	}
	var doc document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, false, fmt.Errorf("decode inventory snapshot: %w", err)
	}
	items, err := fromRecords(doc.Items)
	if err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func toRecords(items []domain.Item) []itemRecord {
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
	return records
}

func fromRecords(records []itemRecord) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(records))
	for _, record := range records {
		item, err := domain.RestoreItem(record.ID, record.Name, record.UnitPrice, record.Quantity, record.InitialQuantity)
		if err != nil {
			return nil, fmt.Errorf("restore item %s: %w", record.ID, err)
		}
		items = append(items, *item)
	}
	return items, nil
}
