package models

import (
	"time"

	"gorm.io/datatypes"
)

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:200;not null" json:"name"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Duration    string  `gorm:"size:100;not null" json:"duration"`

	Includes datatypes.JSONSlice[string] `json:"includes"`

	Popular bool `gorm:"default:false" json:"popular"`
	Enabled bool `gorm:"default:true;index" json:"enabled"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
