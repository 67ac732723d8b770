package handlers

import (
	"fmt"
	"log"

	"github.com/max25782/server/internal/middleware"
	"github.com/max25782/server/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders and invoice downloads.
type OrderHandler struct {
	service        *services.OrderService
	invoiceService *services.InvoiceService
	validate       *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, invoiceService *services.InvoiceService) *OrderHandler {
	return &OrderHandler{
		service:        service,
		invoiceService: invoiceService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the order routes. All routes require
// authentication; deletion additionally requires the admin role.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, auth, admin fiber.Handler) {
	orders := router.Group("/orders", auth)
	orders.Get("/", h.HandleGetOrders)
	orders.Get("/by-user", h.HandleGetOrdersByUser)
	orders.Post("/", h.HandlePlaceOrder)
	orders.Get("/:id/pdf", h.HandleDownloadInvoice)
	orders.Delete("/:id", admin, h.HandleDeleteOrder)
}

// HandleGetOrders retrieves all orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return respondError(c, "Could not retrieve orders", err)
	}
	return c.JSON(orders)
}

// HandleGetOrdersByUser retrieves the authenticated user's orders.
func (h *OrderHandler) HandleGetOrdersByUser(c *fiber.Ctx) error {
	orders, err := h.service.GetOrdersByUser(middleware.UserID(c))
	if err != nil {
		return respondError(c, "Could not retrieve orders", err)
	}
	return c.JSON(orders)
}

// HandlePlaceOrder validates and places a new order, returning the payment
// client secret and the order id.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req services.PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	result, err := h.service.PlaceOrder(c.UserContext(), middleware.UserID(c), req)
	if err != nil {
		log.Printf("Error placing order: %v", err)
		return respondError(c, "Could not place order", err)
	}
	return c.JSON(result)
}

// HandleDownloadInvoice renders the order invoice as a PDF attachment.
func (h *OrderHandler) HandleDownloadInvoice(c *fiber.Ctx) error {
	id := c.Params("id")
	buf, err := h.invoiceService.GeneratePDF(id)
	if err != nil {
		log.Printf("Error generating invoice PDF for order %s: %v", id, err)
		return respondError(c, "Could not generate invoice", err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=order-%s.pdf", id))
	return c.Send(buf)
}

// HandleDeleteOrder removes an order and its line items.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteOrder(id); err != nil {
		log.Printf("Error deleting order %s: %v", id, err)
		return respondError(c, "Could not delete order", err)
	}
	return c.JSON(fiber.Map{"message": fmt.Sprintf("Order %s deleted", id)})
}
