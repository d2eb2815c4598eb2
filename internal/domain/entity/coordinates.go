// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/paulmach/orb"
)

// Coordinates is a WGS84 position.
type Coordinates struct {
	Lat float64 `json:"lat"` // The geographic latitude.
	Lng float64 `json:"lng"` // The geographic longitude.
}

// NewCoordinates builds coordinates from a (lng, lat) pair, the order map click events use.
func NewCoordinates(lng, lat float64) Coordinates {
	return Coordinates{Lat: lat, Lng: lng}
}

// CoordinatesFromPoint converts an orb point (X = lng, Y = lat).
func CoordinatesFromPoint(p orb.Point) Coordinates {
	return Coordinates{Lat: p.Lat(), Lng: p.Lon()}
}

// Point returns the coordinates as an orb point.
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// IsValid reports whether the coordinates fall inside the WGS84 range.
func (c Coordinates) IsValid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// BoundingBox is a west/south/east/north box.
type BoundingBox struct {
	West  float64 `json:"west"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	North float64 `json:"north"`
}

// BoundingBoxFromBound converts an orb bound.
func BoundingBoxFromBound(b orb.Bound) BoundingBox {
	return BoundingBox{
		West:  b.Left(),
		South: b.Bottom(),
		East:  b.Right(),
		North: b.Top(),
	}
}
