package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/labops/labstock/internal/domains/inventory/domain"
	"github.com/labops/labstock/internal/domains/inventory/ports"
)

func TestStore_LoadBeforeFirstSave(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "snapshot.json"))
	require.NoError(t, err)

	items, found, err := store.Load(context.Background())
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, items)
}

func TestStore_SaveThenLoadKeepsOrderAndInitialQuantity(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "snapshot.json"))
	require.NoError(t, err)

	probe, err := domain.RestoreItem("ITM100", "Oscilloscope Probe", 1250, 5, 10)
	require.NoError(t, err)
	cable, err := domain.RestoreItem("ITM102", "Power Supply Cable", 80, 0, 10)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), []domain.Item{*probe, *cable}))

	items, found, err := store.Load(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, items, 2)
	require.Equal(t, "ITM100", items[0].ID)
	require.Equal(t, "ITM102", items[1].ID)
	require.Equal(t, 10, items[1].InitialQuantity)
	require.Equal(t, 0, items[1].Quantity)
}

func TestStore_SaveOverwritesPreviousSnapshot(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "snapshot.json"))
	require.NoError(t, err)

	probe, err := domain.NewItem("ITM100", "Oscilloscope Probe", 1250, 5)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), []domain.Item{*probe}))
	require.NoError(t, store.Save(context.Background(), nil))

	items, found, err := store.Load(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	require.Empty(t, items)
}

func TestStore_DocumentCarriesSlotNameAndFieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	store, err := NewStore(path)
	require.NoError(t, err)

	probe, err := domain.NewItem("ITM100", "Oscilloscope Probe", 1250, 5)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), []domain.Item{*probe}))

	payload, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(payload, &doc))
	require.Equal(t, ports.SnapshotSlot, doc["slot"])
	records := doc["items"].([]any)
	record := records[0].(map[string]any)
	for _, key := range []string{"id", "name", "unitPrice", "quantity", "initialQuantity"} {
		require.Contains(t, record, key)
	}
}

func TestNewStore_RequiresPath(t *testing.T) {
	_, err := NewStore("")
	require.Error(t, err)
}
