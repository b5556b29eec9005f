package models

import (
	"time"

	"gorm.io/gorm"
)

type Voter struct {
	gorm.Model
	VoterID    string     `json:"voterID" gorm:"uniqueIndex"` // VTR-<yymmdd>-<4 hex>, generated before first persist
	FullName   string     `json:"fullName"`
	Email      string     `json:"email" gorm:"uniqueIndex"`
	HouseCode  string     `json:"houseCode"`
	PhotoPath  string     `json:"photoPath,omitempty"`
	Verified   bool       `json:"verified" gorm:"default:false"`
	VerifiedAt *time.Time `json:"verifiedAt,omitempty"`
}
