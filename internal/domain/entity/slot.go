// Package entity contains the core business objects of the project.
package entity

import "encoding/json"

const (
	// MinSlots is the number of slots that always exist.
	MinSlots = 1
	// MaxSlots bounds the slot array; two slots enable side-by-side comparison.
	MaxSlots = 2
)

// SlotState is the per-slot state machine: Empty -> Typing -> Resolved -> Typing -> ...
type SlotState string

const (
	SlotStateEmpty    SlotState = "empty"
	SlotStateTyping   SlotState = "typing"
	SlotStateResolved SlotState = "resolved"
)

// LocationSlot is one independent location selection.
type LocationSlot struct {
	Index     int
	Query     string
	Selection *LocationCandidate
}

// State derives the slot state from its query and selection.
func (s LocationSlot) State() SlotState {
	switch {
	case s.Selection != nil:
		return SlotStateResolved
	case s.Query != "":
		return SlotStateTyping
	default:
		return SlotStateEmpty
	}
}

// IsResolved reports whether the slot holds a selection.
func (s LocationSlot) IsResolved() bool {
	return s.Selection != nil
}

// MarshalJSON adds the derived state to the payload.
func (s LocationSlot) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Index     int                `json:"index"`
		Query     string             `json:"query"`
		State     SlotState          `json:"state"`
		Selection *LocationCandidate `json:"selection,omitempty"`
	}{
		Index:     s.Index,
		Query:     s.Query,
		State:     s.State(),
		Selection: s.Selection,
	})
}
