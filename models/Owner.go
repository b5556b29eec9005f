package models

import (
	"time"

	"gorm.io/gorm"
)

type Owner struct {
	gorm.Model
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	ResidenceCode string     `json:"residenceCode" gorm:"uniqueIndex"` // Ow + 4 digits
	Members       int        `json:"members"`
	MovedInAt     time.Time  `json:"movedInAt"`
	MovedOutAt    *time.Time `json:"movedOutAt,omitempty"`
}
