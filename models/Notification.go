package models

import "gorm.io/gorm"

type Notification struct {
	gorm.Model
	UserID  uint   `json:"userID" gorm:"index"` // zero targets every admin
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"` // booking_request, booking_status
	RefID   uint   `json:"refID"`
	RefType string `json:"refType"`
	IsRead  bool   `json:"isRead" gorm:"default:false"`
}
