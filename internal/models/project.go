package models

import (
	"time"

	"gorm.io/datatypes"
)

// ProjectImage is stored embedded in its parent project, not as its own row.
// The parent owns the remote assets referenced by Key and ThumbKey.
type ProjectImage struct {
	ID     string `json:"id"`
	Src    string `json:"src"`
	Alt    string `json:"alt"`
	Key    string `json:"key"`
	Thumb  string `json:"thumb,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Order  int    `json:"order"`
}

type Project struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"size:30;index;not null" json:"category"`

	CoverImage    string `gorm:"size:500;not null" json:"coverImage"`
	CoverImageKey string `gorm:"size:255" json:"coverImageKey"`

	Images       datatypes.JSONSlice[ProjectImage] `json:"images"`
	Technologies datatypes.JSONSlice[string]       `json:"technologies"`

	GithubLink string `gorm:"size:500" json:"githubLink"`
	LiveLink   string `gorm:"size:500" json:"liveLink"`

	Featured bool   `gorm:"default:false;index" json:"featured"`
	Visible  bool   `gorm:"default:true;index" json:"visible"`
	Date     string `gorm:"size:10" json:"date"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
