package models

import "time"

// DayOff blocks a whole calendar date regardless of the weekly schedule.
// Deactivating keeps the record but frees the date again.
type DayOff struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date   string `gorm:"size:10;uniqueIndex;not null" json:"date"`
	Active bool   `gorm:"default:true" json:"active"`
	Reason string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
