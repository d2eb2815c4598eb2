package usecase

import (
	"context"

	"chirpmap/internal/domain/entity"
)

// SessionState is the whole synchronized picture handed to the UI layer
type SessionState struct {
	Slots      []entity.LocationSlot  `json:"slots"`
	Radius     entity.SearchRadius    `json:"radius"`
	ActiveSlot *int                   `json:"active_slot"`
	Viewport   *entity.ViewportTarget `json:"viewport"`
	CanCompare bool                   `json:"can_compare"`
	Revision   uint64                 `json:"revision"`
}

// Comparison is the feed for side-by-side analysis
type Comparison struct {
	CanCompare bool                       `json:"can_compare"`
	Selections []entity.LocationCandidate `json:"selections"`
}

// MapClickResult reports what a map click did
type MapClickResult struct {
	Resolved  bool                      `json:"resolved"`
	Candidate *entity.LocationCandidate `json:"candidate,omitempty"`
	Slot      *entity.LocationSlot      `json:"slot,omitempty"`
	Viewport  *entity.ViewportTarget    `json:"viewport,omitempty"`
}

// LocationSyncUsecase coordinates slots, suggestion lookups, reverse geocoding, radius and
// viewport so they stay consistent with each other.
type LocationSyncUsecase interface {
	State(ctx context.Context) *SessionState

	// AddSlot adds a slot with its own suggestion controller
	AddSlot(ctx context.Context) (int, error)

	// RemoveSlot removes a slot; invalid indexes are ignored
	RemoveSlot(ctx context.Context, index int)

	// TypeQuery records a keystroke for the slot and submits it for suggestions
	TypeQuery(ctx context.Context, index int, text string) (*entity.LocationSlot, error)

	Suggestions(ctx context.Context, index int) (*SuggestionSnapshot, error)

	// SelectCandidate resolves the slot with one of its current suggestions
	SelectCandidate(ctx context.Context, index int, candidateID string) (*entity.LocationSlot, error)

	// ResolveMapClick reverse geocodes the click into slot 0. An unresolved click changes nothing.
	ResolveMapClick(ctx context.Context, lng, lat float64) (*MapClickResult, error)

	SetRadius(ctx context.Context, radius entity.SearchRadius) (*entity.ViewportTarget, error)
	Radius() entity.SearchRadius

	// Viewport returns the current target for the active slot, or nil
	Viewport(ctx context.Context) *entity.ViewportTarget

	Compare(ctx context.Context) *Comparison

	// Close stops every suggestion controller
	Close()
}
