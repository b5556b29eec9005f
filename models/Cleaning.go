package models

import (
	"time"

	"gorm.io/gorm"
)

type Cleaning struct {
	gorm.Model
	OwnerCode   string    `json:"ownerCode" gorm:"index"` // Ow + 4 digits
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	ServiceType string    `json:"serviceType"` // standard, deep, move_out
	StaffCount  int       `json:"staffCount"`  // 1..5
	Date        time.Time `json:"date"`
	Slot        string    `json:"slot"` // 09:00 .. 17:00 hourly
	Status      string    `json:"status" gorm:"type:varchar(20);default:'confirmed';index"` // confirmed, cancelled
}
