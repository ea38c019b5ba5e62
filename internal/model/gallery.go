package model

import (
	"time"

	"gorm.io/gorm"
)

type Gallery struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Category  string    `gorm:"size:64;index" json:"category"`
	ImageURL  string    `gorm:"size:1024" json:"image_url"`
	ImageSize int64     `json:"image_size"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *Gallery) BeforeCreate(tx *gorm.DB) error {
	g.ID = newID(g.ID)
	return nil
}

func (Gallery) TableName() string {
	return "gallery"
}
