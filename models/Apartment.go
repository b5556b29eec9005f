package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Apartment struct {
	gorm.Model
	Title       string         `json:"title"`
	Price       float64        `json:"price"`
	Area        float64        `json:"area"`
	Bedrooms    string         `json:"bedrooms"`  // 1, 2, 3, 4+
	Bathrooms   string         `json:"bathrooms"` // 1, 2, 3, 4+
	Furnished   bool           `json:"furnished"`
	View        string         `json:"view"`
	Description string         `json:"description" gorm:"type:text"`
	Images      datatypes.JSON `json:"images"` // stored upload paths, at least 3

	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:ApartmentID"`
}

// MarshalJSON renders Images as a plain string array instead of raw JSON bytes.
func (a *Apartment) MarshalJSON() ([]byte, error) {
	type Alias Apartment
	aux := &struct {
		Images []string `json:"images"`
		*Alias
	}{
		Images: []string{},
		Alias:  (*Alias)(a),
	}

	if a.Images != nil {
		var images []string
		if err := json.Unmarshal(a.Images, &images); err == nil {
			aux.Images = images
		}
	}

	return json.Marshal(aux)
}
