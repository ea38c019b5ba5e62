package model

import (
	"time"

	"gorm.io/gorm"
)

type News struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Category  string    `gorm:"size:64;index" json:"category"`
	Content   string    `gorm:"type:text" json:"content"`
	Status    string    `gorm:"size:16;index;default:Published" json:"status"`
	ImageURL  *string   `gorm:"size:1024" json:"image_url"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (n *News) BeforeCreate(tx *gorm.DB) error {
	n.ID = newID(n.ID)
	return nil
}

func (News) TableName() string {
	return "news"
}
