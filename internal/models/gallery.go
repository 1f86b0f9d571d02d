package models

import "time"

type GalleryImage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Src string `gorm:"size:500;not null" json:"src"`
	Alt string `gorm:"size:255" json:"alt"`

	Category string `gorm:"size:30;index;not null" json:"category"`
	Featured bool   `gorm:"default:false;index" json:"featured"`
	Visible  bool   `gorm:"default:true;index" json:"visible"`
	Order    int    `gorm:"column:sort_order;default:0;index" json:"order"`

	Key    string `gorm:"size:255" json:"key"`
	Thumb  string `gorm:"size:500" json:"thumb,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`

	// Optional back-reference to a project. Not a foreign key: the
	// referenced project may be deleted without touching this row.
	ProjectID *uint `gorm:"index" json:"projectId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
