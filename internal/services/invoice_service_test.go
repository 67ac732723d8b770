package services_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/max25782/server/internal/models"
	"github.com/max25782/server/internal/repositories"
	"github.com/max25782/server/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type stubRenderer struct {
	output []byte
	err    error
	last   *models.Invoice
}

func (r *stubRenderer) Render(inv *models.Invoice) ([]byte, error) {
	r.last = inv
	return r.output, r.err
}

func invoiceFixtureOrder() *models.Order {
	chair := &models.Product{
		ID:          "prod-chair",
		Name:        "Office Chair",
		Description: "Ergonomic chair with adjustable lumbar support and armrests",
		Image:       "/uploads/products/chair.png",
		Weight:      floatPtr(14),
		Length:      floatPtr(1.1),
	}
	return &models.Order{
		ID:        "order-1",
		Total:     45000, // minor units
		CreatedAt: time.Date(2026, time.March, 5, 10, 30, 0, 0, time.UTC),
		User: &models.User{
			ID:      "user-1",
			Name:    "Alice",
			Email:   "alice@example.com",
			Phone:   "+1 555 0100",
			Address: "42 Elm Street",
		},
		Items: []models.OrderItem{
			{Product: chair, ProductID: "prod-chair", Price: 15000, Quantity: 3, Weight: 14.5, Length: 1.2},
		},
	}
}

func TestBuildModel_GrandTotalMatchesPersistedTotal(t *testing.T) {
	order := invoiceFixtureOrder()
	// Line prices deliberately do not sum to the persisted total; the
	// document reports what was charged, not a recomputation.
	order.Total = 99900

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetByID", "order-1").Return(order, nil)
	service := services.NewInvoiceService(orderRepo, &stubRenderer{})

	inv, err := service.BuildModel("order-1")

	assert.NoError(t, err)
	assert.Equal(t, "$999.00", inv.Totals.Total)
	assert.Equal(t, "$999.00", inv.Info.Total)
	assert.Equal(t, "$450.00", inv.Lines[0].LineTotal)
}

func TestBuildModel_FormatsDateAndMeasurements(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetByID", "order-1").Return(invoiceFixtureOrder(), nil)
	service := services.NewInvoiceService(orderRepo, &stubRenderer{})

	inv, err := service.BuildModel("order-1")

	assert.NoError(t, err)
	assert.Equal(t, "5/3/2026", inv.Info.Date)
	assert.Equal(t, "14.5", inv.Lines[0].Weight)
	assert.Equal(t, "1.2", inv.Lines[0].Length)
	assert.Equal(t, "43.50 kg", inv.Totals.Weight)
	assert.Equal(t, "3.60 m", inv.Totals.Length)
}

func TestBuildModel_TruncatesLongDescriptions(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetByID", "order-1").Return(invoiceFixtureOrder(), nil)
	service := services.NewInvoiceService(orderRepo, &stubRenderer{})

	inv, err := service.BuildModel("order-1")

	assert.NoError(t, err)
	desc := inv.Lines[0].Description
	assert.True(t, strings.HasSuffix(desc, "..."))
	assert.Len(t, []rune(desc), 33)
}

func TestBuildModel_PlaceholdersForMissingData(t *testing.T) {
	order := &models.Order{
		ID:        "order-2",
		Total:     5000,
		CreatedAt: time.Date(2026, time.November, 23, 0, 0, 0, 0, time.UTC),
		User:      nil,
		Items: []models.OrderItem{
			{Product: nil, ProductID: "gone", Price: 5000, Quantity: 1, Weight: 0, Length: math.NaN()},
		},
	}
	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetByID", "order-2").Return(order, nil)
	service := services.NewInvoiceService(orderRepo, &stubRenderer{})

	inv, err := service.BuildModel("order-2")

	assert.NoError(t, err)
	assert.Equal(t, "Guest", inv.Customer.Name)
	assert.Equal(t, "No email", inv.Customer.Email)
	assert.Equal(t, "No phone", inv.Customer.Phone)
	assert.Equal(t, "No address", inv.Customer.Address)
	assert.Equal(t, "23/11/2026", inv.Info.Date)

	line := inv.Lines[0]
	assert.Equal(t, "Unknown Product", line.Name)
	assert.Equal(t, "—", line.Description)
	assert.Equal(t, "—", line.Weight)
	assert.Equal(t, "—", line.Length)

	// Zero and NaN measurements are left out of the totals.
	assert.Equal(t, "0.00 kg", inv.Totals.Weight)
	assert.Equal(t, "0.00 m", inv.Totals.Length)
}

func TestBuildModel_IsDeterministic(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetByID", "order-1").Return(invoiceFixtureOrder(), nil)
	service := services.NewInvoiceService(orderRepo, &stubRenderer{})

	first, err := service.BuildModel("order-1")
	assert.NoError(t, err)
	second, err := service.BuildModel("order-1")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildModel_QRPayloadContainsOrderSummary(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetByID", "order-1").Return(invoiceFixtureOrder(), nil)
	service := services.NewInvoiceService(orderRepo, &stubRenderer{})

	inv, err := service.BuildModel("order-1")

	assert.NoError(t, err)
	assert.Contains(t, inv.QRPayload, `"id":"order-1"`)
	assert.Contains(t, inv.QRPayload, `"customerName":"Alice"`)
	assert.Contains(t, inv.QRPayload, `"product":"Office Chair"`)
	assert.Equal(t, "Scan to view order #order-1", inv.QRCaption)
}

func TestGeneratePDF(t *testing.T) {
	t.Run("renders the built model", func(t *testing.T) {
		renderer := &stubRenderer{output: []byte("%PDF-stub")}
		orderRepo := new(MockOrderRepository)
		orderRepo.On("GetByID", "order-1").Return(invoiceFixtureOrder(), nil)
		service := services.NewInvoiceService(orderRepo, renderer)

		buf, err := service.GeneratePDF("order-1")

		assert.NoError(t, err)
		assert.Equal(t, []byte("%PDF-stub"), buf)
		assert.Equal(t, "order-1", renderer.last.Info.OrderID)
	})

	t.Run("propagates a missing order", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		orderRepo.On("GetByID", "missing").
			Return(nil, fmt.Errorf("order missing: %w", repositories.ErrNotFound))
		service := services.NewInvoiceService(orderRepo, &stubRenderer{})

		buf, err := service.GeneratePDF("missing")

		assert.True(t, errors.Is(err, repositories.ErrNotFound))
		assert.Nil(t, buf)
	})

	t.Run("propagates renderer failures", func(t *testing.T) {
		renderer := &stubRenderer{err: errors.New("render failed")}
		orderRepo := new(MockOrderRepository)
		orderRepo.On("GetByID", mock.Anything).Return(invoiceFixtureOrder(), nil)
		service := services.NewInvoiceService(orderRepo, renderer)

		_, err := service.GeneratePDF("order-1")

		assert.Error(t, err)
	})
}
