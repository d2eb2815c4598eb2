// Package entity contains the core business objects of the project.
package entity

// ViewportTarget is the derived camera instruction for the map renderer. It is never stored.
type ViewportTarget struct {
	Center     Coordinates  `json:"center"`
	Zoom       int          `json:"zoom"`
	DurationMs int64        `json:"duration_ms"`
	Radius     SearchRadius `json:"radius"`
	Bounds     BoundingBox  `json:"bounds"` // Box covering the radius around Center.
}

// FlyToInstruction is a viewport target emitted to the map-rendering collaborators.
type FlyToInstruction struct {
	// Revision increases with every emitted instruction; consumers drop lower revisions.
	Revision  uint64         `json:"revision"`
	SlotIndex int            `json:"slot_index"`
	Target    ViewportTarget `json:"target"`
	RequestID string         `json:"request_id,omitempty"`
}
