package models

import "strings"

// Coordinates is a geographic point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location describes where a listing is.
type Location struct {
	City         string      `json:"city"`
	Neighborhood string      `json:"neighborhood"`
	Coordinates  Coordinates `json:"coordinates"`
}

// Host is the owner presenting a listing.
type Host struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	Superhost bool   `json:"superhost"`
}

// Apartment is a read-only catalogue listing.
type Apartment struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Currency    string   `json:"currency"`
	Location    Location `json:"location"`
	Images      []string `json:"images"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   float64  `json:"bathrooms"`
	// Size is the floor area in square meters.
	Size      int      `json:"size"`
	Amenities []string `json:"amenities"`
	Rating    float64  `json:"rating"`
	Reviews   int      `json:"reviews"`
	Host      Host     `json:"host"`
	Available bool     `json:"available"`
	Featured  bool     `json:"featured"`
}

// SearchCriteria is the filter applied on the search screen.
// Zero Bedrooms/Bathrooms mean "any"; an empty City matches all cities.
type SearchCriteria struct {
	Query     string
	City      string
	MinPrice  int64
	MaxPrice  int64
	Bedrooms  int
	Bathrooms int
}

// Matches reports whether a satisfies every criterion.
func (c SearchCriteria) Matches(a Apartment) bool {
	if q := strings.ToLower(c.Query); q != "" {
		if !strings.Contains(strings.ToLower(a.Title), q) &&
			!strings.Contains(strings.ToLower(a.Location.City), q) &&
			!strings.Contains(strings.ToLower(a.Location.Neighborhood), q) {
			return false
		}
	}
	if c.City != "" && a.Location.City != c.City {
		return false
	}
	if a.Price < c.MinPrice || a.Price > c.MaxPrice {
		return false
	}
	if c.Bedrooms != 0 && a.Bedrooms < c.Bedrooms {
		return false
	}
	if c.Bathrooms != 0 && a.Bathrooms < float64(c.Bathrooms) {
		return false
	}
	return true
}
