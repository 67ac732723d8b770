package models

import "gorm.io/gorm"

// Product represents a product in the catalog. Price is stored in minor
// currency units (cents). Weight and length are optional shipping
// measurements; order lines fall back to them when no override is given.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" validate:"omitempty,max=100"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	Price       int       `json:"price" validate:"gte=0"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;type:varchar(255)"`
	Image       string    `json:"image"`
	Weight      *float64  `json:"weight,omitempty"`
	Length      *float64  `json:"length,omitempty"`
	CategoryID  *string   `json:"category_id,omitempty" gorm:"type:varchar(36)"`
	Category    *Category `json:"category,omitempty"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
