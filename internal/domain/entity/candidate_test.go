package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationCandidate_ComposedLabel(t *testing.T) {
	tests := []struct {
		name      string
		candidate LocationCandidate
		want      string
	}{
		{
			name:      "name and subtitle",
			candidate: LocationCandidate{Name: "Greenfield Retail Store", SubtitleName: "Nairobi, Kenya"},
			want:      "Greenfield Retail Store, Nairobi, Kenya",
		},
		{
			name:      "with external id",
			candidate: LocationCandidate{Name: "First Rizz Bank", SubtitleName: "Bali", SubtitleExternalID: "ID-BA"},
			want:      "First Rizz Bank, Bali, ID-BA",
		},
		{
			name:      "missing subtitle",
			candidate: LocationCandidate{Name: "Unknown"},
			want:      "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.candidate.ComposedLabel())
		})
	}
}

func TestPosition_TaggedVariant(t *testing.T) {
	bare := Bare()
	_, ok := bare.Coordinates()
	assert.False(t, ok)
	assert.False(t, bare.IsEnriched())

	enriched := Enriched(NewCoordinates(36.8219, -1.2921))
	coords, ok := enriched.Coordinates()
	require.True(t, ok)
	assert.InDelta(t, -1.2921, coords.Lat, 1e-9)
	assert.InDelta(t, 36.8219, coords.Lng, 1e-9)
}

func TestLocationCandidate_JSONOmitsCoordinatesWhenBare(t *testing.T) {
	candidate := LocationCandidate{ID: "1", Name: "Public Dance Museum", SubtitleName: "Denmark", Category: CategoryDefault}

	raw, err := json.Marshal(candidate)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "coordinates")
	assert.Contains(t, string(raw), `"label":"Public Dance Museum, Denmark"`)

	var decoded LocationCandidate
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.False(t, decoded.Position.IsEnriched())
	assert.Equal(t, candidate.Name, decoded.Name)
}

func TestLocationCandidate_WithPositionCopies(t *testing.T) {
	original := LocationCandidate{ID: "2", Name: "Omotosho Road Basic", Position: Bare()}
	enriched := original.WithPosition(Enriched(Coordinates{Lat: 52.4862, Lng: -1.8904}))

	assert.False(t, original.Position.IsEnriched())
	assert.True(t, enriched.Position.IsEnriched())
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryRetailStore, ParseCategory("retail_store"))
	assert.Equal(t, CategoryGasStation, ParseCategory("Fuel"))
	assert.Equal(t, CategoryShoppingMall, ParseCategory("shopping centre"))
	assert.Equal(t, CategoryDefault, ParseCategory("poi"))
	assert.Equal(t, CategoryDefault, ParseCategory(""))
	assert.Equal(t, CategoryCafe, FirstCategory("poi", "coffee"))
}

func TestLocationSlot_State(t *testing.T) {
	assert.Equal(t, SlotStateEmpty, LocationSlot{}.State())
	assert.Equal(t, SlotStateTyping, LocationSlot{Query: "Green"}.State())
	assert.Equal(t, SlotStateResolved, LocationSlot{Query: "x", Selection: &LocationCandidate{}}.State())
}
