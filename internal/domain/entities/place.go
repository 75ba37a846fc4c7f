package entities

import "fmt"

// PlaceFeature is a geocoding result in the Mapbox feature shape
type PlaceFeature struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	PlaceType  []string        `json:"place_type"`
	Relevance  float64         `json:"relevance"`
	Properties PlaceProperties `json:"properties"`
	Text       string          `json:"text"`
	PlaceName  string          `json:"place_name"`
	Center     LngLat          `json:"center"`
	Geometry   PointGeometry   `json:"geometry"`
	Context    []PlaceContext  `json:"context"`
	FacilityID int             `json:"facility_id"`
}

// PlaceProperties holds the category metadata of a feature
type PlaceProperties struct {
	Category string `json:"category"`
	Maki     string `json:"maki"`
}

// PointGeometry is a GeoJSON point
type PointGeometry struct {
	Type        string `json:"type"`
	Coordinates LngLat `json:"coordinates"`
}

// PlaceContext is one administrative level enclosing a feature
type PlaceContext struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// NewPlaceFeature projects a facility onto a geocoding feature
func NewPlaceFeature(f *Facility) PlaceFeature {
	center := f.Coordinates.LngLat()

	var ctx []PlaceContext
	add := func(kind, text string) {
		if text != "" {
			ctx = append(ctx, PlaceContext{ID: fmt.Sprintf("%s.%d", kind, f.ID), Text: text})
		}
	}
	add("neighborhood", f.Postal.Neighborhood)
	add("place", f.Postal.City)
	add("region", f.Postal.Region)
	add("country", f.Postal.Country)

	return PlaceFeature{
		ID:         fmt.Sprintf("poi.%d", f.ID),
		Type:       "Feature",
		PlaceType:  []string{"poi"},
		Relevance:  f.Relevance,
		Properties: PlaceProperties{Category: "hospital", Maki: "hospital"},
		Text:       f.Name,
		PlaceName:  f.PlaceName(),
		Center:     center,
		Geometry:   PointGeometry{Type: "Point", Coordinates: center},
		Context:    ctx,
		FacilityID: f.ID,
	}
}
