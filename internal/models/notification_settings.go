package models

import "time"

// NotificationSettings is a single-row config: how long before a
// confirmed appointment the local reminder fires.
type NotificationSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Active      bool   `gorm:"default:true" json:"active"`
	Lead        string `gorm:"size:5;default:'01:00'" json:"lead"`
	LeadMinutes int    `gorm:"default:60" json:"lead_minutes"`

	UpdatedAt time.Time `json:"updated_at"`
}
