package repositories

import (
	"fmt"
	"strings"
	"sync"

	"github.com/max25782/server/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// Search returns products whose name or description contains the term.
func (r *MockProductRepository) Search(term string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lowered := strings.ToLower(term)
	matches := make([]models.Product, 0)
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), lowered) ||
			strings.Contains(strings.ToLower(p.Description), lowered) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return &product, nil
}

// GetBySlug returns a product by its slug.
func (r *MockProductRepository) GetBySlug(slug string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.Slug == slug {
			product := p
			return &product, nil
		}
	}
	return nil, fmt.Errorf("product with slug %s: %w", slug, ErrNotFound)
}

// GetByCategorySlug returns all products whose category has the given slug.
func (r *MockProductRepository) GetByCategorySlug(categorySlug string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]models.Product, 0)
	for _, p := range r.products {
		if p.Category != nil && p.Category.Slug == categorySlug {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	for _, p := range r.products {
		if p.Slug != "" && p.Slug == product.Slug {
			return fmt.Errorf("product slug %q: %w", product.Slug, ErrConflict)
		}
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product with ID %s for update: %w", product.ID, ErrNotFound)
	}
	for id, p := range r.products {
		if id != product.ID && p.Slug != "" && p.Slug == product.Slug {
			return fmt.Errorf("product slug %q: %w", product.Slug, ErrConflict)
		}
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s for deletion: %w", id, ErrNotFound)
	}
	delete(r.products, id)
	return nil
}
