package services

import (
	"github.com/max25782/server/internal/models"
	"github.com/max25782/server/internal/repositories"
	"github.com/max25782/server/pkg/slug"
)

// CategoryInput carries the updatable category fields.
type CategoryInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Image string `json:"image"`
}

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// GetCategoryByID retrieves a single category by its ID.
func (s *CategoryService) GetCategoryByID(id string) (*models.Category, error) {
	return s.repo.GetByID(id)
}

// GetCategoryBySlug retrieves a single category by its slug.
func (s *CategoryService) GetCategoryBySlug(categorySlug string) (*models.Category, error) {
	return s.repo.GetBySlug(categorySlug)
}

// CreateCategory creates an empty draft category that the admin panel fills
// in afterwards via UpdateCategory.
func (s *CategoryService) CreateCategory() (*models.Category, error) {
	category := &models.Category{}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory updates the category's fields and regenerates its slug from
// the new name.
func (s *CategoryService) UpdateCategory(id string, input CategoryInput) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	category.Name = input.Name
	category.Slug = slug.Generate(input.Name)
	category.Image = input.Image
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory deletes a category by its ID.
func (s *CategoryService) DeleteCategory(id string) error {
	return s.repo.Delete(id)
}
