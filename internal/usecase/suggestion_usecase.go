package usecase

import (
	"context"

	"chirpmap/internal/domain/entity"
)

// SuggestionSnapshot is a consistent view of one suggestion controller
type SuggestionSnapshot struct {
	Query       string                     `json:"query"`
	Seq         uint64                     `json:"seq"`
	Suggestions []entity.LocationCandidate `json:"suggestions"`
	Loading     bool                       `json:"loading"`
	Failed      bool                       `json:"failed"`
}

// SuggestionUsecase turns free-text input into candidate lists. Only the result of the
// most recently submitted query is ever observable.
type SuggestionUsecase interface {
	// SubmitQuery replaces the pending query and schedules a lookup. An empty query clears
	// the suggestions without issuing a lookup.
	SubmitQuery(ctx context.Context, text string)

	// CurrentSuggestions returns the candidates of the latest completed lookup
	CurrentSuggestions() []entity.LocationCandidate

	// IsLoading reports whether the latest submitted query is still being looked up
	IsLoading() bool

	// Failed reports whether the latest completed lookup failed
	Failed() bool

	Snapshot() SuggestionSnapshot

	// Wait blocks until every lookup started so far has returned
	Wait()

	// Close supersedes any pending lookup; further submissions are ignored
	Close()
}

// SuggestionControllerFactory creates one independent controller per slot
type SuggestionControllerFactory func() SuggestionUsecase
