package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/max25782/server/internal/models"
	"github.com/max25782/server/internal/repositories"
)

// DocumentRenderer lays an invoice model out as a paginated document and
// returns the finished byte buffer.
type DocumentRenderer interface {
	Render(inv *models.Invoice) ([]byte, error)
}

// InvoiceService assembles the flat invoice document model for an order and
// hands it to the rendering collaborator.
type InvoiceService struct {
	orderRepo repositories.OrderRepository
	renderer  DocumentRenderer
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(orderRepo repositories.OrderRepository, renderer DocumentRenderer) *InvoiceService {
	return &InvoiceService{
		orderRepo: orderRepo,
		renderer:  renderer,
	}
}

type qrLineInfo struct {
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Length   float64 `json:"length"`
	Weight   float64 `json:"weight"`
}

type qrOrderInfo struct {
	ID            string       `json:"id"`
	Date          string       `json:"date"`
	Total         float64      `json:"total"`
	CustomerName  string       `json:"customerName"`
	CustomerEmail string       `json:"customerEmail"`
	Items         []qrLineInfo `json:"items"`
}

// BuildModel loads the order with its items, products and user, and builds
// the invoice document model. Building the same unchanged order twice yields
// an identical model.
func (s *InvoiceService) BuildModel(orderID string) (*models.Invoice, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	payload, err := buildQRPayload(order)
	if err != nil {
		return nil, err
	}

	lines := make([]models.InvoiceLine, 0, len(order.Items))
	var totalWeight, totalLength float64
	for _, item := range order.Items {
		lines = append(lines, buildInvoiceLine(item))
		// Zero and NaN measurements contribute nothing to the totals.
		if item.Weight != 0 && !math.IsNaN(item.Weight) {
			totalWeight += item.Weight * float64(item.Quantity)
		}
		if item.Length != 0 && !math.IsNaN(item.Length) {
			totalLength += item.Length * float64(item.Quantity)
		}
	}

	return &models.Invoice{
		Header: models.InvoiceHeader{
			Brand:        "Delivery App",
			AddressLines: []string{"Delivery App", "123 Main Street", "New York, NY, 10025"},
		},
		QRPayload: payload,
		QRCaption: fmt.Sprintf("Scan to view order #%s", order.ID),
		Customer:  buildCustomerBlock(order.User),
		Info: models.InvoiceInfo{
			OrderID: order.ID,
			Date:    formatInvoiceDate(order.CreatedAt),
			Total:   formatCurrency(order.Total),
		},
		Lines: lines,
		Totals: models.InvoiceTotals{
			Length: fmt.Sprintf("%.2f m", totalLength),
			Weight: fmt.Sprintf("%.2f kg", totalWeight),
			Total:  formatCurrency(order.Total),
		},
		Footer: "Thank you for your order! We hope to see you again.",
	}, nil
}

// GeneratePDF builds the invoice model and renders it to PDF bytes.
func (s *InvoiceService) GeneratePDF(orderID string) ([]byte, error) {
	model, err := s.BuildModel(orderID)
	if err != nil {
		return nil, err
	}
	return s.renderer.Render(model)
}

// buildQRPayload encodes a scannable order summary. Measurements here come
// from the current catalog product, matching what a scanner would cross-check
// against the live catalog.
func buildQRPayload(order *models.Order) (string, error) {
	info := qrOrderInfo{
		ID:           order.ID,
		Date:         order.CreatedAt.UTC().Format(time.RFC3339),
		Total:        order.Total,
		CustomerName: "Guest",
		Items:        make([]qrLineInfo, 0, len(order.Items)),
	}
	if order.User != nil {
		info.CustomerName = order.User.Name
		info.CustomerEmail = order.User.Email
	}
	for _, item := range order.Items {
		line := qrLineInfo{
			Product:  "Unknown Product",
			Quantity: item.Quantity,
			Price:    item.Price,
		}
		if item.Product != nil {
			line.Product = item.Product.Name
			if item.Product.Length != nil {
				line.Length = *item.Product.Length
			}
			if item.Product.Weight != nil {
				line.Weight = *item.Product.Weight
			}
		}
		info.Items = append(info.Items, line)
	}

	payload, err := json.Marshal(info)
	if err != nil {
		return "", fmt.Errorf("failed to marshal QR payload for order %s: %w", order.ID, err)
	}
	return string(payload), nil
}

func buildCustomerBlock(user *models.User) models.InvoiceParty {
	customer := models.InvoiceParty{
		Name:    "Guest",
		Email:   "No email",
		Phone:   "No phone",
		Address: "No address",
	}
	if user == nil {
		return customer
	}
	if user.Name != "" {
		customer.Name = user.Name
	}
	if user.Email != "" {
		customer.Email = user.Email
	}
	if user.Phone != "" {
		customer.Phone = user.Phone
	}
	if user.Address != "" {
		customer.Address = user.Address
	}
	return customer
}

func buildInvoiceLine(item models.OrderItem) models.InvoiceLine {
	line := models.InvoiceLine{
		Name:        "Unknown Product",
		Description: "—",
		Length:      formatMeasurement(item.Length),
		Weight:      formatMeasurement(item.Weight),
		Price:       formatCurrency(item.Price),
		Quantity:    strconv.Itoa(item.Quantity),
		LineTotal:   formatCurrency(item.Price * float64(item.Quantity)),
	}
	if item.Product != nil {
		line.Image = item.Product.Image
		line.Name = item.Product.Name
		if item.Product.Description != "" {
			line.Description = truncateDescription(item.Product.Description)
		}
	}
	return line
}

// truncateDescription keeps at most 30 characters plus an ellipsis marker.
func truncateDescription(desc string) string {
	runes := []rune(desc)
	if len(runes) <= 30 {
		return desc
	}
	return string(runes[:30]) + "..."
}

// formatCurrency renders a minor-unit amount as decimal currency.
func formatCurrency(minorUnits float64) string {
	return fmt.Sprintf("$%.2f", minorUnits/100)
}

// formatMeasurement renders a resolved measurement; zero or NaN show as an
// em dash.
func formatMeasurement(v float64) string {
	if v == 0 || math.IsNaN(v) {
		return "—"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatInvoiceDate renders D/M/YYYY without zero padding.
func formatInvoiceDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}
