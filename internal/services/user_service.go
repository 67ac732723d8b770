package services

import (
	"github.com/max25782/server/internal/models"
	"github.com/max25782/server/internal/repositories"
)

// UserService handles profile reads and favorites.
type UserService struct {
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, productRepo repositories.ProductRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

// GetProfile retrieves the user with their favorites preloaded.
func (s *UserService) GetProfile(id string) (*models.User, error) {
	return s.userRepo.GetByIDWithFavorites(id)
}

// GetFavorites retrieves the user's favorite products.
func (s *UserService) GetFavorites(id string) ([]models.Product, error) {
	user, err := s.userRepo.GetByIDWithFavorites(id)
	if err != nil {
		return nil, err
	}
	if user.Favorites == nil {
		return []models.Product{}, nil
	}
	return user.Favorites, nil
}

// ToggleFavorite adds the product to the user's favorites, or removes it when
// already present. Returns the updated profile.
func (s *UserService) ToggleFavorite(userID, productID string) (*models.User, error) {
	user, err := s.userRepo.GetByIDWithFavorites(userID)
	if err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}

	isFavorite := false
	for _, fav := range user.Favorites {
		if fav.ID == productID {
			isFavorite = true
			break
		}
	}

	if isFavorite {
		err = s.userRepo.RemoveFavorite(userID, product)
	} else {
		err = s.userRepo.AddFavorite(userID, product)
	}
	if err != nil {
		return nil, err
	}
	return s.userRepo.GetByIDWithFavorites(userID)
}
