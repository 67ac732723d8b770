package services

import (
	"github.com/max25782/server/internal/models"
	"github.com/max25782/server/internal/repositories"
	"github.com/max25782/server/pkg/slug"
)

// ProductInput carries the updatable product fields. Price is in minor
// currency units.
type ProductInput struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Price       int      `json:"price" validate:"gte=0"`
	Image       string   `json:"image"`
	Weight      *float64 `json:"weight"`
	Length      *float64 `json:"length"`
	CategoryID  string   `json:"categoryId" validate:"required"`
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo         repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) *ProductService {
	return &ProductService{
		repo:         repo,
		categoryRepo: categoryRepo,
	}
}

// GetAllProducts retrieves all products, or a filtered set when a search term
// is given.
func (s *ProductService) GetAllProducts(searchTerm string) ([]models.Product, error) {
	if searchTerm != "" {
		return s.repo.Search(searchTerm)
	}
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetProductBySlug retrieves a single product by its slug.
func (s *ProductService) GetProductBySlug(productSlug string) (*models.Product, error) {
	return s.repo.GetBySlug(productSlug)
}

// GetProductsByCategory retrieves all products in the category with the given
// slug.
func (s *ProductService) GetProductsByCategory(categorySlug string) ([]models.Product, error) {
	return s.repo.GetByCategorySlug(categorySlug)
}

// CreateProduct creates an empty draft product that the admin panel fills in
// afterwards via UpdateProduct.
func (s *ProductService) CreateProduct() (*models.Product, error) {
	product := &models.Product{}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct updates the product's fields, validates the referenced
// category and regenerates the slug from the new name.
func (s *ProductService) UpdateProduct(id string, input ProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Image = input.Image
	product.Weight = input.Weight
	product.Length = input.Length
	product.Slug = slug.Generate(input.Name)
	product.CategoryID = &category.ID
	product.Category = nil // avoid re-saving the association

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product by its ID. Historical order lines keep
// their product id as a dangling weak reference.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
