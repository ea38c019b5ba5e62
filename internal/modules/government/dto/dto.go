package dto

import "karondoran-server/internal/model"

// CreateStaffRequest is bound from a multipart form; the "photo" file part is optional.
type CreateStaffRequest struct {
	Name        string `form:"name" json:"name" binding:"required"`
	Position    string `form:"position" json:"position" binding:"required"`
	Level       int    `form:"level" json:"level" binding:"required"`
	Description string `form:"description" json:"description"`
	IsActive    *bool  `form:"is_active" json:"is_active"`
	SortOrder   int    `form:"sort_order" json:"sort_order"`
}

type UpdateStaffRequest struct {
	Name        *string `form:"name" json:"name"`
	Position    *string `form:"position" json:"position"`
	Level       *int    `form:"level" json:"level"`
	Description *string `form:"description" json:"description"`
	IsActive    *bool   `form:"is_active" json:"is_active"`
	SortOrder   *int    `form:"sort_order" json:"sort_order"`
}

// LevelGroup is one tier of the public government structure.
type LevelGroup struct {
	Level int           `json:"level"`
	Label string        `json:"label"`
	Staff []model.Staff `json:"staff"`
}
