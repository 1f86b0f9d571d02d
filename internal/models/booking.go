package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;index;not null" json:"email"`
	Phone string `gorm:"size:30;not null" json:"phone"`

	// Free-text service name as submitted by the visitor, intentionally
	// not a reference to the services table.
	Service       string `gorm:"size:200;not null" json:"service"`
	PreferredDate string `gorm:"size:50;not null" json:"preferredDate"`
	Message       string `gorm:"type:text" json:"message"`

	Status string `gorm:"size:20;default:'new';index" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
