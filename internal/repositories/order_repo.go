package repositories

import (
	"github.com/max25782/server/internal/models"
)

// OrderRepository defines the interface for order data access. Reads preload
// items with their products plus the owning user; Create persists the order
// together with its items atomically.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByUser(userID string) ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	Delete(id string) error
}
