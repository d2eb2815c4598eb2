// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"strings"
)

type positionKind uint8

const (
	positionBare positionKind = iota
	positionEnriched
)

// Position is the two-phase state of a candidate: bare (no coordinates yet) or enriched.
type Position struct {
	kind   positionKind
	coords Coordinates
}

// Bare returns a position without coordinates.
func Bare() Position {
	return Position{kind: positionBare}
}

// Enriched returns a position carrying coordinates.
func Enriched(coords Coordinates) Position {
	return Position{kind: positionEnriched, coords: coords}
}

// IsEnriched reports whether coordinates are known.
func (p Position) IsEnriched() bool {
	return p.kind == positionEnriched
}

// Coordinates returns the coordinates and whether the position is enriched.
func (p Position) Coordinates() (Coordinates, bool) {
	return p.coords, p.kind == positionEnriched
}

// LocationCandidate is a provider-returned place record. Values are immutable once produced;
// WithPosition returns a copy.
type LocationCandidate struct {
	ID                 string
	Name               string
	SubtitleName       string
	SubtitleExternalID string
	Category           LocationCategory
	Position           Position
}

// WithPosition returns a copy of the candidate with the given position.
func (c LocationCandidate) WithPosition(p Position) LocationCandidate {
	c.Position = p
	return c
}

// ComposedLabel is the text snapped into a slot query on selection:
// "name, subtitleName[, subtitleExternalId]". Empty parts are skipped.
func (c LocationCandidate) ComposedLabel() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{c.Name, c.SubtitleName, c.SubtitleExternalID} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return strings.Join(parts, ", ")
}

type candidateJSON struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Subtitle subtitleJSON     `json:"subtitle"`
	Category LocationCategory `json:"category"`
	Label    string           `json:"label"`
	Coords   *Coordinates     `json:"coordinates,omitempty"`
}

type subtitleJSON struct {
	Name       string `json:"name"`
	ExternalID string `json:"external_id,omitempty"`
}

// MarshalJSON renders the candidate in the shape the UI layer consumes.
func (c LocationCandidate) MarshalJSON() ([]byte, error) {
	out := candidateJSON{
		ID:       c.ID,
		Name:     c.Name,
		Subtitle: subtitleJSON{Name: c.SubtitleName, ExternalID: c.SubtitleExternalID},
		Category: c.Category,
		Label:    c.ComposedLabel(),
	}
	if coords, ok := c.Position.Coordinates(); ok {
		out.Coords = &coords
	}

	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of MarshalJSON; the label is derived and therefore ignored.
func (c *LocationCandidate) UnmarshalJSON(data []byte) error {
	var in candidateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	*c = LocationCandidate{
		ID:                 in.ID,
		Name:               in.Name,
		SubtitleName:       in.Subtitle.Name,
		SubtitleExternalID: in.Subtitle.ExternalID,
		Category:           in.Category,
		Position:           Bare(),
	}
	if !c.Category.IsValid() {
		c.Category = CategoryDefault
	}
	if in.Coords != nil {
		c.Position = Enriched(*in.Coords)
	}

	return nil
}
