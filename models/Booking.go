package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking is an apartment visit reservation. It starts out pending and
// stays that way until an admin confirms it; any edit sends it back to
// pending for re-approval.
type Booking struct {
	gorm.Model
	ApartmentID uint      `json:"apartmentID"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Date        time.Time `json:"date"` // truncated to midnight
	Slot        string    `json:"slot"` // 15:00 .. 20:00 in 30 minute steps
	Status      string    `json:"status" gorm:"type:varchar(20);default:'pending';index"` // pending, confirmed, cancelled

	Apartment *Apartment `json:"apartment,omitempty" gorm:"foreignKey:ApartmentID"`
}
