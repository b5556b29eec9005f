package models

import "gorm.io/gorm"

type Poll struct {
	gorm.Model
	Question string       `json:"question"`
	Options  []PollOption `json:"options" gorm:"foreignKey:PollID;constraint:OnDelete:CASCADE"`
}

type PollOption struct {
	gorm.Model
	PollID   uint   `json:"pollID" gorm:"index"`
	Label    string `json:"label"`
	Votes    int    `json:"votes"`
	Position int    `json:"position"` // preserves the order options were submitted in
}
