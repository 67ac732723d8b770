package services_test

import (
	"fmt"
	"testing"

	"github.com/max25782/server/internal/models"
	"github.com/max25782/server/internal/repositories"
	"github.com/max25782/server/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserService_GetFavorites(t *testing.T) {
	t.Run("returns the stored favorites", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := services.NewUserService(userRepo, new(MockProductRepository))

		userRepo.On("GetByIDWithFavorites", "user-1").Return(&models.User{
			ID:        "user-1",
			Favorites: []models.Product{{ID: "prod-1", Name: "Chair"}},
		}, nil)

		favorites, err := service.GetFavorites("user-1")
		assert.NoError(t, err)
		assert.Len(t, favorites, 1)
		assert.Equal(t, "prod-1", favorites[0].ID)
	})

	t.Run("returns an empty slice, never nil", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := services.NewUserService(userRepo, new(MockProductRepository))

		userRepo.On("GetByIDWithFavorites", "user-1").Return(&models.User{ID: "user-1"}, nil)

		favorites, err := service.GetFavorites("user-1")
		assert.NoError(t, err)
		assert.NotNil(t, favorites)
		assert.Empty(t, favorites)
	})
}

func TestUserService_ToggleFavorite(t *testing.T) {
	product := &models.Product{ID: "prod-1", Name: "Chair"}

	t.Run("adds a product not yet favorited", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		productRepo := new(MockProductRepository)
		service := services.NewUserService(userRepo, productRepo)

		userRepo.On("GetByIDWithFavorites", "user-1").Return(&models.User{ID: "user-1"}, nil)
		productRepo.On("GetByID", "prod-1").Return(product, nil)
		userRepo.On("AddFavorite", "user-1", product).Return(nil)

		_, err := service.ToggleFavorite("user-1", "prod-1")
		assert.NoError(t, err)
		userRepo.AssertCalled(t, "AddFavorite", "user-1", product)
		userRepo.AssertNotCalled(t, "RemoveFavorite", mock.Anything, mock.Anything)
	})

	t.Run("removes a product already favorited", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		productRepo := new(MockProductRepository)
		service := services.NewUserService(userRepo, productRepo)

		userRepo.On("GetByIDWithFavorites", "user-1").Return(&models.User{
			ID:        "user-1",
			Favorites: []models.Product{*product},
		}, nil)
		productRepo.On("GetByID", "prod-1").Return(product, nil)
		userRepo.On("RemoveFavorite", "user-1", product).Return(nil)

		_, err := service.ToggleFavorite("user-1", "prod-1")
		assert.NoError(t, err)
		userRepo.AssertCalled(t, "RemoveFavorite", "user-1", product)
		userRepo.AssertNotCalled(t, "AddFavorite", mock.Anything, mock.Anything)
	})

	t.Run("fails for an unknown product", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		productRepo := new(MockProductRepository)
		service := services.NewUserService(userRepo, productRepo)

		userRepo.On("GetByIDWithFavorites", "user-1").Return(&models.User{ID: "user-1"}, nil)
		productRepo.On("GetByID", "missing").
			Return(nil, fmt.Errorf("product missing: %w", repositories.ErrNotFound))

		_, err := service.ToggleFavorite("user-1", "missing")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}
