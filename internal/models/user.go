package models

import "gorm.io/gorm"

// Roles assignable to a user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a customer or an administrator of the store.
type User struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Name       string    `json:"name"`
	Password   string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	AvatarPath string    `json:"avatar_path"`
	Role       string    `json:"role" gorm:"type:varchar(20);default:user"`
	Favorites  []Product `json:"favorites,omitempty" gorm:"many2many:user_favorites"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
