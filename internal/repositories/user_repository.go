package repositories

import "github.com/max25782/server/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll() ([]models.User, error)
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	GetByIDWithFavorites(id string) (*models.User, error)
	Update(user *models.User) error
	AddFavorite(userID string, product *models.Product) error
	RemoveFavorite(userID string, product *models.Product) error
}
