package models

import "time"

// BusinessHours holds one row per weekday. Weekday keys follow the
// pt-BR names used across the app: domingo, segunda, terca, quarta,
// quinta, sexta, sabado.
type BusinessHours struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Weekday string `gorm:"size:10;uniqueIndex;not null" json:"weekday"`
	Active  bool   `json:"active"`
	Open    string `gorm:"size:5" json:"open"`
	Close   string `gorm:"size:5" json:"close"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
