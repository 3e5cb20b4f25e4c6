package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_AllocatesSequentialIDs(t *testing.T) {
	reg := NewRegistry()
	require.Equal(t, "ITM100", reg.AllocateID())
	require.Equal(t, "ITM101", reg.AllocateID())
}

func TestRegistry_SnapshotKeepsInsertionOrder(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"first", "second", "third"} {
		item, err := NewItem(reg.AllocateID(), name, 1, 1)
		require.NoError(t, err)
		require.NoError(t, reg.Put(*item))
	}

	require.True(t, reg.Delete("ITM101"))

	item, err := NewItem(reg.AllocateID(), "fourth", 1, 1)
	require.NoError(t, err)
	require.NoError(t, reg.Put(*item))

	snapshot := reg.Snapshot()
	require.Len(t, snapshot, 3)
	require.Equal(t, []string{"first", "third", "fourth"},
		[]string{snapshot[0].Name, snapshot[1].Name, snapshot[2].Name})
}

func TestRegistry_RestoreReseedsCounter(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Restore([]Item{
		{ID: "ITM104", Name: "a", UnitPrice: 1, Quantity: 1},
		{ID: "ITM250", Name: "b", UnitPrice: 1, Quantity: 1},
	}))
	require.Equal(t, "ITM251", reg.AllocateID())
}

func TestRegistry_RestoreEmptyKeepsFloor(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Restore(nil))
	require.Equal(t, "ITM100", reg.AllocateID())
}

func TestRegistry_PutRejectsDuplicateID(t *testing.T) {
	reg := NewRegistry()
	item, err := NewItem("ITM100", "first", 1, 1)
	require.NoError(t, err)
	require.NoError(t, reg.Put(*item))
	require.ErrorIs(t, reg.Put(*item), ErrDuplicateItem)
}

func TestRegistry_MutateRollsBackOnError(t *testing.T) {
	reg := NewRegistry()
	item, err := NewItem("ITM100", "probe", 10, 2)
	require.NoError(t, err)
	require.NoError(t, reg.Put(*item))

	boom := errors.New("boom")
	_, err = reg.Mutate("ITM100", func(it *Item) error {
		it.Quantity = 99
		return boom
	})
	require.ErrorIs(t, err, boom)

	stored, err := reg.Get("ITM100")
	require.NoError(t, err)
	require.Equal(t, 2, stored.Quantity)
}

func TestRegistry_GetReturnsCopy(t *testing.T) {
	reg := NewRegistry()
	item, err := NewItem("ITM100", "probe", 10, 2)
	require.NoError(t, err)
	require.NoError(t, reg.Put(*item))

	got, err := reg.Get("ITM100")
	require.NoError(t, err)
	got.Quantity = 99

	again, err := reg.Get("ITM100")
	require.NoError(t, err)
	require.Equal(t, 2, again.Quantity)
}

func TestRegistry_DeleteMissingIsNoOp(t *testing.T) {
	reg := NewRegistry()
	require.False(t, reg.Delete("ITM100"))
	_, err := reg.Get("ITM100")
	require.ErrorIs(t, err, ErrItemNotFound)
}
