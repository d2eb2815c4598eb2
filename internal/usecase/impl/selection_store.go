package impl

import (
	"strconv"

	"chirpmap/internal/domain/entity"
	domainerrors "chirpmap/internal/domain/errors"
	"chirpmap/internal/usecase"
)

// selectionStore owns the slot array. It is not safe for concurrent use; the sync
// coordinator serializes access to it.
type selectionStore struct {
	slots []entity.LocationSlot
}

// NewSelectionStore creates a store holding a single empty slot
func NewSelectionStore() usecase.SelectionUsecase {
	return &selectionStore{
		slots: []entity.LocationSlot{{Index: 0}},
	}
}

func (s *selectionStore) AddSlot() (int, error) {
	if len(s.slots) >= entity.MaxSlots {
		return -1, domainerrors.ErrCapacityExceeded.WithDetails("at most " + strconv.Itoa(entity.MaxSlots) + " slots")
	}

	index := len(s.slots)
	s.slots = append(s.slots, entity.LocationSlot{Index: index})

	return index, nil
}

func (s *selectionStore) RemoveSlot(index int) bool {
	if !s.valid(index) || len(s.slots) <= entity.MinSlots {
		return false
	}

	s.slots = append(s.slots[:index], s.slots[index+1:]...)
	for i := range s.slots {
		s.slots[i].Index = i
	}

	return true
}

func (s *selectionStore) SetSlotQuery(index int, text string) error {
	if !s.valid(index) {
		return slotNotFound(index)
	}

	slot := &s.slots[index]
	slot.Query = text
	if slot.Selection != nil && slot.Selection.ComposedLabel() != text {
		slot.Selection = nil
	}

	return nil
}

func (s *selectionStore) SetSlotSelection(index int, candidate entity.LocationCandidate) error {
	if !s.valid(index) {
		return slotNotFound(index)
	}

	slot := &s.slots[index]
	slot.Selection = &candidate
	slot.Query = candidate.ComposedLabel()

	return nil
}

// Slots returns copies; callers cannot mutate the store through them.
func (s *selectionStore) Slots() []entity.LocationSlot {
	out := make([]entity.LocationSlot, len(s.slots))
	for i, slot := range s.slots {
		out[i] = copySlot(slot)
	}

	return out
}

func (s *selectionStore) Slot(index int) (entity.LocationSlot, bool) {
	if !s.valid(index) {
		return entity.LocationSlot{}, false
	}

	return copySlot(s.slots[index]), true
}

func (s *selectionStore) Len() int {
	return len(s.slots)
}

func (s *selectionStore) ActiveSelections() []entity.LocationCandidate {
	selections := make([]entity.LocationCandidate, 0, len(s.slots))
	for _, slot := range s.slots {
		if slot.Selection != nil {
			selections = append(selections, *slot.Selection)
		}
	}

	return selections
}

func (s *selectionStore) CanCompare() bool {
	return len(s.slots) == entity.MaxSlots && len(s.ActiveSelections()) == entity.MaxSlots
}

func (s *selectionStore) valid(index int) bool {
	return index >= 0 && index < len(s.slots)
}

func copySlot(slot entity.LocationSlot) entity.LocationSlot {
	if slot.Selection != nil {
		selection := *slot.Selection
		slot.Selection = &selection
	}

	return slot
}

func slotNotFound(index int) error {
	return domainerrors.ErrSlotNotFound.WithDetails("slot " + strconv.Itoa(index))
}
