package models

import (
	"time"

	"gorm.io/gorm"
)

type Security struct {
	gorm.Model
	OwnerCode  string    `json:"ownerCode" gorm:"index"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	GuardCount int       `json:"guardCount"` // 1..10
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status" gorm:"type:varchar(20);default:'confirmed';index"` // confirmed, cancelled
}
