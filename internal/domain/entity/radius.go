// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"strings"
)

// SearchRadius is one of the fixed search radius options.
type SearchRadius string

const (
	Radius5km   SearchRadius = "5km"
	Radius10km  SearchRadius = "10km"
	Radius25km  SearchRadius = "25km"
	Radius50km  SearchRadius = "50km"
	Radius100km SearchRadius = "100km"

	// DefaultRadius is active until the user picks another option.
	DefaultRadius = Radius25km
)

// RadiusOption describes one entry of the radius picker.
type RadiusOption struct {
	Radius      SearchRadius `json:"radius"`
	Kilometers  float64      `json:"kilometers"`
	Zoom        int          `json:"zoom"`
	Description string       `json:"description"`
}

// radiusOptions is ordered from the tightest to the widest view.
var radiusOptions = []RadiusOption{
	{Radius: Radius5km, Kilometers: 5, Zoom: 13, Description: "Neighborhood level"},
	{Radius: Radius10km, Kilometers: 10, Zoom: 12, Description: "Local area"},
	{Radius: Radius25km, Kilometers: 25, Zoom: 11, Description: "City wide"},
	{Radius: Radius50km, Kilometers: 50, Zoom: 10, Description: "Metropolitan area"},
	{Radius: Radius100km, Kilometers: 100, Zoom: 9, Description: "Regional view"},
}

// RadiusOptions returns a copy of the radius picker entries.
func RadiusOptions() []RadiusOption {
	out := make([]RadiusOption, len(radiusOptions))
	copy(out, radiusOptions)

	return out
}

// ParseSearchRadius validates a radius label such as "25km". Matching is case-insensitive.
func ParseSearchRadius(raw string) (SearchRadius, error) {
	candidate := SearchRadius(strings.ToLower(strings.TrimSpace(raw)))
	if !candidate.IsValid() {
		return "", fmt.Errorf("unknown search radius %q", raw)
	}

	return candidate, nil
}

// IsValid checks if the SearchRadius is a member of the closed set.
func (r SearchRadius) IsValid() bool {
	_, ok := r.option()
	return ok
}

// String returns the string representation of the SearchRadius.
func (r SearchRadius) String() string {
	return string(r)
}

// Zoom returns the map zoom level for the radius.
func (r SearchRadius) Zoom() int {
	return ZoomFor(r)
}

// Kilometers returns the radius distance.
func (r SearchRadius) Kilometers() float64 {
	opt, ok := r.option()
	if !ok {
		opt, _ = DefaultRadius.option()
	}

	return opt.Kilometers
}

func (r SearchRadius) option() (RadiusOption, bool) {
	for _, opt := range radiusOptions {
		if opt.Radius == r {
			return opt, true
		}
	}

	return RadiusOption{}, false
}

// ZoomFor maps a search radius onto a map zoom level. Values outside the closed set
// cannot be produced by ParseSearchRadius; they fall back to the default radius zoom.
func ZoomFor(r SearchRadius) int {
	opt, ok := r.option()
	if !ok {
		opt, _ = DefaultRadius.option()
	}

	return opt.Zoom
}
