package model

import (
	"time"

	"gorm.io/gorm"
)

// AdminUser is an account allowed into the admin panel once IsActive is set.
type AdminUser struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"size:191;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	FullName  string    `gorm:"size:255" json:"full_name"`
	IsActive  bool      `gorm:"index;default:false" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *AdminUser) BeforeCreate(tx *gorm.DB) error {
	u.ID = newID(u.ID)
	return nil
}
