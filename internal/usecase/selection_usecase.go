package usecase

import (
	"chirpmap/internal/domain/entity"
)

// SelectionUsecase holds the one or two location slots
type SelectionUsecase interface {
	// AddSlot appends an empty slot and returns its index.
	// Returns ErrCapacityExceeded when the store already holds the maximum.
	AddSlot() (int, error)

	// RemoveSlot removes the slot and re-indexes the rest. Invalid indexes and removing
	// the last slot are silent no-ops; the result reports whether anything changed.
	RemoveSlot(index int) bool

	// SetSlotQuery updates the query and clears a selection whose composed label no longer matches.
	SetSlotQuery(index int, text string) error

	// SetSlotSelection stores the candidate and snaps the query to its composed label.
	SetSlotSelection(index int, candidate entity.LocationCandidate) error

	Slots() []entity.LocationSlot
	Slot(index int) (entity.LocationSlot, bool)
	Len() int

	// ActiveSelections returns the selections of resolved slots in slot order
	ActiveSelections() []entity.LocationCandidate

	// CanCompare is true iff two slots exist and both are resolved
	CanCompare() bool
}
