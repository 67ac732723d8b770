package repositories_test

import (
	"testing"
	"time"

	"github.com/max25782/server/internal/models"
	"github.com/max25782/server/internal/repositories"

	"github.com/stretchr/testify/assert"
)

var (
	_ repositories.ProductRepository = (*repositories.MockProductRepository)(nil)
	_ repositories.OrderRepository   = (*repositories.MockOrderRepository)(nil)
)

func TestMockProductRepository(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	product := &models.Product{Name: "Office Chair", Slug: "office-chair", Description: "Ergonomic"}
	assert.NoError(t, repo.Create(product))
	assert.NotEmpty(t, product.ID)

	// Lookups by id and slug
	found, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Office Chair", found.Name)

	found, err = repo.GetBySlug("office-chair")
	assert.NoError(t, err)
	assert.Equal(t, product.ID, found.ID)

	_, err = repo.GetBySlug("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// Search matches name or description, case insensitive
	matches, err := repo.Search("ERGO")
	assert.NoError(t, err)
	assert.Len(t, matches, 1)

	matches, err = repo.Search("nothing")
	assert.NoError(t, err)
	assert.Empty(t, matches)

	// Slug conflicts are rejected
	dup := &models.Product{Name: "Another Chair", Slug: "office-chair"}
	assert.ErrorIs(t, repo.Create(dup), repositories.ErrConflict)

	// Update and delete
	product.Name = "Office Chair Deluxe"
	assert.NoError(t, repo.Update(product))

	assert.ErrorIs(t, repo.Update(&models.Product{ID: "missing"}), repositories.ErrNotFound)

	assert.NoError(t, repo.Delete(product.ID))
	assert.ErrorIs(t, repo.Delete(product.ID), repositories.ErrNotFound)
}

func TestMockOrderRepository(t *testing.T) {
	repo := repositories.NewMockOrderRepository()

	older := &models.Order{
		UserID:    "user-1",
		Total:     100,
		CreatedAt: time.Now().Add(-time.Hour),
		Items:     []models.OrderItem{{ProductID: "prod-1", Price: 100, Quantity: 1}},
	}
	newer := &models.Order{
		UserID:    "user-2",
		Total:     200,
		CreatedAt: time.Now(),
		Items:     []models.OrderItem{{ProductID: "prod-2", Price: 200, Quantity: 1}},
	}
	assert.NoError(t, repo.Create(older))
	assert.NoError(t, repo.Create(newer))

	// Ids are assigned and propagated to items
	assert.NotEmpty(t, older.ID)
	assert.Equal(t, older.ID, older.Items[0].OrderID)
	assert.NotEmpty(t, older.Items[0].ID)

	// Listing is newest first
	all, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID)

	byUser, err := repo.GetByUser("user-1")
	assert.NoError(t, err)
	assert.Len(t, byUser, 1)
	assert.Equal(t, older.ID, byUser[0].ID)

	found, err := repo.GetByID(older.ID)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, found.Total)

	_, err = repo.GetByID("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.NoError(t, repo.Delete(older.ID))
	assert.ErrorIs(t, repo.Delete(older.ID), repositories.ErrNotFound)
}
