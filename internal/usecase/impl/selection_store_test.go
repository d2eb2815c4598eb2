package impl

import (
	"testing"

	"chirpmap/internal/domain/entity"
	domainerrors "chirpmap/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func greenfield() entity.LocationCandidate {
	return entity.LocationCandidate{
		ID:           "greenfield",
		Name:         "Greenfield Retail Store",
		SubtitleName: "Nairobi, Kenya",
		Category:     entity.CategoryRetailStore,
		Position:     entity.Enriched(entity.NewCoordinates(36.8219, -1.2921)),
	}
}

func rizzBank() entity.LocationCandidate {
	return entity.LocationCandidate{
		ID:           "rizz",
		Name:         "First Rizz Bank",
		SubtitleName: "Bali",
		Category:     entity.CategoryBank,
		Position:     entity.Enriched(entity.NewCoordinates(115.092, -8.3405)),
	}
}

func TestSelectionStore_StartsWithOneEmptySlot(t *testing.T) {
	store := NewSelectionStore()

	require.Equal(t, 1, store.Len())
	slot, ok := store.Slot(0)
	require.True(t, ok)
	assert.Equal(t, entity.SlotStateEmpty, slot.State())
	assert.Empty(t, store.ActiveSelections())
}

func TestSelectionStore_AddSlot_CapacityExceeded(t *testing.T) {
	store := NewSelectionStore()

	index, err := store.AddSlot()
	require.NoError(t, err)
	assert.Equal(t, 1, index)

	require.NoError(t, store.SetSlotSelection(1, rizzBank()))
	before := store.Slots()

	index, err = store.AddSlot()
	assert.ErrorIs(t, err, domainerrors.ErrCapacityExceeded)
	assert.Equal(t, -1, index)
	assert.Equal(t, before, store.Slots())
}

func TestSelectionStore_RemoveSlot(t *testing.T) {
	store := NewSelectionStore()

	assert.False(t, store.RemoveSlot(0), "last slot cannot be removed")
	assert.Equal(t, 1, store.Len())

	_, err := store.AddSlot()
	require.NoError(t, err)
	require.NoError(t, store.SetSlotSelection(1, rizzBank()))

	assert.False(t, store.RemoveSlot(5))
	assert.False(t, store.RemoveSlot(-1))
	assert.Equal(t, 2, store.Len())

	assert.True(t, store.RemoveSlot(0))
	require.Equal(t, 1, store.Len())

	slot, ok := store.Slot(0)
	require.True(t, ok)
	assert.Equal(t, 0, slot.Index)
	assert.Equal(t, "rizz", slot.Selection.ID)
}

func TestSelectionStore_SetSlotSelection_SnapsComposedLabel(t *testing.T) {
	store := NewSelectionStore()

	require.NoError(t, store.SetSlotSelection(0, greenfield()))

	slot, _ := store.Slot(0)
	assert.Equal(t, "Greenfield Retail Store, Nairobi, Kenya", slot.Query)
	assert.Equal(t, entity.SlotStateResolved, slot.State())
}

func TestSelectionStore_SetSlotQuery_InvalidatesSelection(t *testing.T) {
	store := NewSelectionStore()
	require.NoError(t, store.SetSlotSelection(0, greenfield()))

	require.NoError(t, store.SetSlotQuery(0, "Greenfield Retail Store, Nairobi, Kenya"))
	slot, _ := store.Slot(0)
	assert.True(t, slot.IsResolved(), "unchanged label keeps the selection")

	require.NoError(t, store.SetSlotQuery(0, "Greenfield"))
	slot, _ = store.Slot(0)
	assert.Nil(t, slot.Selection)
	assert.Equal(t, entity.SlotStateTyping, slot.State())

	require.NoError(t, store.SetSlotQuery(0, "Greenfield"))
	again, _ := store.Slot(0)
	assert.Equal(t, slot, again)
}

func TestSelectionStore_InvalidIndexLeavesStoreUnchanged(t *testing.T) {
	store := NewSelectionStore()
	before := store.Slots()

	assert.ErrorIs(t, store.SetSlotQuery(3, "x"), domainerrors.ErrSlotNotFound)
	assert.ErrorIs(t, store.SetSlotSelection(-1, greenfield()), domainerrors.ErrSlotNotFound)
	assert.Equal(t, before, store.Slots())

	_, ok := store.Slot(1)
	assert.False(t, ok)
}

func TestSelectionStore_CanCompare(t *testing.T) {
	store := NewSelectionStore()
	require.NoError(t, store.SetSlotSelection(0, greenfield()))
	assert.False(t, store.CanCompare(), "one resolved slot is not comparable")

	_, err := store.AddSlot()
	require.NoError(t, err)
	assert.False(t, store.CanCompare())

	require.NoError(t, store.SetSlotSelection(1, rizzBank()))
	assert.True(t, store.CanCompare())

	selections := store.ActiveSelections()
	require.Len(t, selections, 2)
	assert.Equal(t, "greenfield", selections[0].ID)
	assert.Equal(t, "rizz", selections[1].ID)

	require.NoError(t, store.SetSlotQuery(1, "First"))
	assert.False(t, store.CanCompare())
}

func TestSelectionStore_SlotsAreCopies(t *testing.T) {
	store := NewSelectionStore()
	require.NoError(t, store.SetSlotSelection(0, greenfield()))

	slots := store.Slots()
	slots[0].Selection.Name = "mutated"
	slots[0].Query = "mutated"

	slot, _ := store.Slot(0)
	assert.Equal(t, "Greenfield Retail Store", slot.Selection.Name)
	assert.Equal(t, "Greenfield Retail Store, Nairobi, Kenya", slot.Query)
}
