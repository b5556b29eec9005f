package models

import (
	"time"

	"gorm.io/gorm"
)

// Health is an in-residence medical appointment. Slots for today that have
// already passed are filtered out of availability, and past appointments
// cannot be cancelled.
type Health struct {
	gorm.Model
	OwnerCode   string    `json:"ownerCode" gorm:"index"`
	PatientName string    `json:"patientName"`
	Phone       string    `json:"phone"`
	ServiceType string    `json:"serviceType"` // consultation, nursing, physio
	Date        time.Time `json:"date"`
	Slot        string    `json:"slot"` // 09:00 .. 17:00 hourly
	Status      string    `json:"status" gorm:"type:varchar(20);default:'confirmed';index"` // confirmed, cancelled
}
