package entities

import "strings"

// Facility represents a healthcare location (hospital or clinic) in the directory
type Facility struct {
	ID                int         `json:"id"`
	Name              string      `json:"name"`
	Address           string      `json:"address"`
	Postal            PostalInfo  `json:"postal"`
	Phone             string      `json:"phone"`
	Email             string      `json:"email,omitempty"`
	Website           string      `json:"website,omitempty"`
	Image             string      `json:"image,omitempty"`
	Distance          float64     `json:"distance"`
	Rating            float64     `json:"rating"`
	Emergency         bool        `json:"emergency"`
	Coordinates       Coordinates `json:"coordinates"`
	Services          []string    `json:"services"`
	Hours             string      `json:"hours"`
	Description       string      `json:"description"`
	Relevance         float64     `json:"-"`
	Specialties       []Specialty `json:"specialties,omitempty"`
	Facilities        []string    `json:"facilities,omitempty"`
	InsuranceAccepted []string    `json:"insurance_accepted,omitempty"`
	Reviews           []Review    `json:"reviews,omitempty"`
}

// PostalInfo holds the structured parts of a facility's formatted address
type PostalInfo struct {
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	Region       string `json:"region"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

// Coordinates represents geographical coordinates in degrees
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LngLat is the [longitude, latitude] pair used on the directions and geocoding wire
type LngLat [2]float64

// Lng returns the longitude component
func (p LngLat) Lng() float64 { return p[0] }

// Lat returns the latitude component
func (p LngLat) Lat() float64 { return p[1] }

// LngLat converts c to wire order
func (c Coordinates) LngLat() LngLat {
	return LngLat{c.Lng, c.Lat}
}

// Coordinates converts p to a lat/lng value
func (p LngLat) Coordinates() Coordinates {
	return Coordinates{Lat: p[1], Lng: p[0]}
}

// Specialty is a clinical department listed on a facility's detail view
type Specialty struct {
	Name        string `json:"name"`
	Doctors     int    `json:"doctors"`
	WaitTime    string `json:"wait_time"`
	Description string `json:"description,omitempty"`
}

// Review is a patient review of a facility
type Review struct {
	ID      int     `json:"id"`
	Patient string  `json:"patient"`
	Rating  float64 `json:"rating"`
	Date    string  `json:"date"`
	Comment string  `json:"comment"`
}

// HasService reports whether the facility lists service exactly (case-sensitive)
func (f *Facility) HasService(service string) bool {
	for _, s := range f.Services {
		if s == service {
			return true
		}
	}
	return false
}

// PlaceName returns the fully formatted address used for geocoding matches,
// e.g. "St. Mary's Medical Center, 456 Oak Avenue, New York, NY 10002, United States".
func (f *Facility) PlaceName() string {
	street := f.Address
	if i := strings.Index(street, ","); i >= 0 {
		street = street[:i]
	}

	parts := []string{f.Name, street}
	if f.Postal.City != "" {
		parts = append(parts, f.Postal.City)
	}
	regionLine := strings.TrimSpace(f.Postal.Region + " " + f.Postal.PostalCode)
	if regionLine != "" {
		parts = append(parts, regionLine)
	}
	if f.Postal.Country != "" {
		parts = append(parts, f.Postal.Country)
	}
	return strings.Join(parts, ", ")
}
