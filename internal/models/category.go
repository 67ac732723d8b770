package models

import "gorm.io/gorm"

// Category groups products in the catalog.
type Category struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" validate:"omitempty,max=100"`
	Slug       string `json:"slug" gorm:"uniqueIndex;type:varchar(255)"`
	Image      string `json:"image"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
