package model

import (
	"time"

	"gorm.io/gorm"
)

// Staff is one member of the village government structure.
type Staff struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Position    string    `gorm:"size:255;not null" json:"position"`
	Level       int       `gorm:"index;not null;default:5" json:"level"`
	PhotoURL    *string   `gorm:"size:1024" json:"photo_url"`
	Description *string   `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"index;not null" json:"is_active"`
	SortOrder   int       `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	s.ID = newID(s.ID)
	return nil
}

func (Staff) TableName() string {
	return "government_staff"
}
