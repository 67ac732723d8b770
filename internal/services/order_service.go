package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/max25782/server/internal/models"
	"github.com/max25782/server/internal/repositories"
	"github.com/max25782/server/pkg/payment"
	"github.com/max25782/server/pkg/rabbitmq"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// minimumChargeTotal is the smallest order total the payment processor
// accepts, in display currency.
const minimumChargeTotal = 0.5

// OrderItemRequest is one requested line of an order. Price is the unit price
// in the caller's display currency and becomes the persisted snapshot.
// Length and Weight are optional measurement overrides that may arrive as
// numbers or strings ("12.5kg").
type OrderItemRequest struct {
	Price     float64           `json:"price" validate:"required,gt=0"`
	ProductID string            `json:"productId" validate:"required"`
	Quantity  int               `json:"quantity" validate:"required,gt=0"`
	Length    models.FlexNumber `json:"length"`
	Weight    models.FlexNumber `json:"weight"`
}

// PlaceOrderRequest is the order placement payload.
type PlaceOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// PlacementResult is returned to the client after a successful placement.
type PlacementResult struct {
	ClientSecret string `json:"clientSecret"`
	OrderID      string `json:"orderId"`
}

// OrderService handles order placement, retrieval and deletion.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	payments    payment.Provider
	mqClient    *rabbitmq.Client
}

// NewOrderService creates a new OrderService. mqClient may be nil; events are
// then skipped.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, payments payment.Provider, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		payments:    payments,
		mqClient:    mqClient,
	}
}

// GetAllOrders retrieves all orders with their items and users.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrdersByUser retrieves the orders placed by the given user.
func (s *OrderService) GetOrdersByUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// PlaceOrder validates the request, resolves per-line measurements, persists
// the order atomically and then requests a payment intent for the total.
//
// The two phases are deliberately not one transaction: the order row is
// committed before the payment call, so a payment failure leaves an order
// without a payment intent. No compensating rollback is performed.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, req PlaceOrderRequest) (*PlacementResult, error) {
	var total float64
	for _, item := range req.Items {
		total += item.Price * float64(item.Quantity)
	}
	if total < minimumChargeTotal {
		return nil, fmt.Errorf("%w: amount must be at least $0.50", ErrValidation)
	}

	// Catalog lookups are independent per line, so they run concurrently;
	// results are written by input index to keep persistence order.
	items := make([]models.OrderItem, len(req.Items))
	var g errgroup.Group
	for i, reqItem := range req.Items {
		i, reqItem := i, reqItem
		g.Go(func() error {
			product, err := s.productRepo.GetByID(reqItem.ProductID)
			if err != nil && !errors.Is(err, repositories.ErrNotFound) {
				return fmt.Errorf("failed to look up product %s: %w", reqItem.ProductID, err)
			}
			// A missing product simply means no catalog defaults for this
			// line; the line itself keeps the caller's price snapshot.
			m := resolveMeasurement(reqItem, product)
			items[i] = models.OrderItem{
				ProductID: reqItem.ProductID,
				Price:     reqItem.Price,
				Quantity:  reqItem.Quantity,
				Length:    m.Length,
				Weight:    m.Weight,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:     uuid.New().String(),
		UserID: userID,
		Items:  items,
		Total:  total,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	totalInCents := int64(math.Round(total * 100))
	clientSecret, err := s.payments.CreateIntent(ctx, totalInCents, fmt.Sprintf("Order by userId %s", order.UserID))
	if err != nil {
		return nil, fmt.Errorf("payment intent for order %s: %w", order.ID, err)
	}

	s.publishOrderPlaced(order)

	return &PlacementResult{
		ClientSecret: clientSecret,
		OrderID:      order.ID,
	}, nil
}

// publishOrderPlaced emits an order event, best effort. Failures are logged
// and never fail the placement.
func (s *OrderService) publishOrderPlaced(order *models.Order) {
	if s.mqClient == nil {
		return
	}
	event := rabbitmq.OrderPlacedEvent{
		OrderID: order.ID,
		UserID:  order.UserID,
		Total:   order.Total,
		Items:   len(order.Items),
	}
	if err := s.mqClient.PublishOrderPlaced(event); err != nil {
		log.Printf("Warning: Failed to publish order placed event for order %s: %v", order.ID, err)
	}
}

// DeleteOrder removes an order and its line items.
func (s *OrderService) DeleteOrder(id string) error {
	if _, err := s.orderRepo.GetByID(id); err != nil {
		return err
	}
	return s.orderRepo.Delete(id)
}
