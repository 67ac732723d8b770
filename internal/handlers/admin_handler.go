package handlers

import (
	"fmt"
	"log"

	"github.com/max25782/server/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles the role-gated admin panel endpoints.
type AdminHandler struct {
	adminService   *services.AdminService
	statsService   *services.StatsService
	invoiceService *services.InvoiceService
	validate       *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *services.AdminService, statsService *services.StatsService, invoiceService *services.InvoiceService) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		statsService:   statsService,
		invoiceService: invoiceService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the admin routes; all of them require the admin
// role.
func (h *AdminHandler) RegisterRoutes(router fiber.Router, auth, admin fiber.Handler) {
	adminRoutes := router.Group("/admin", auth, admin)
	adminRoutes.Get("/users", h.HandleGetUsers)
	adminRoutes.Get("/orders", h.HandleGetOrders)
	adminRoutes.Get("/orders/:id/pdf", h.HandleDownloadInvoice)
	adminRoutes.Get("/stats", h.HandleGetStats)
	adminRoutes.Post("/create", h.HandleCreateAdmin)
	adminRoutes.Patch("/users/:id/make-admin", h.HandleMakeUserAdmin)
}

// HandleGetUsers lists all users with safe fields.
func (h *AdminHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.adminService.FindAllUsers()
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return respondError(c, "Could not retrieve users", err)
	}
	return c.JSON(users)
}

// HandleGetOrders lists all orders with full includes.
func (h *AdminHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.adminService.FindAllOrders()
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return respondError(c, "Could not retrieve orders", err)
	}
	return c.JSON(orders)
}

// HandleGetStats returns the full statistics rollup.
func (h *AdminHandler) HandleGetStats(c *fiber.Ctx) error {
	report, err := h.statsService.ProductStats()
	if err != nil {
		log.Printf("Error computing stats: %v", err)
		return respondError(c, "Could not compute statistics", err)
	}
	return c.JSON(report)
}

// HandleDownloadInvoice renders any order's invoice as a PDF attachment.
func (h *AdminHandler) HandleDownloadInvoice(c *fiber.Ctx) error {
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

type createAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

// HandleCreateAdmin creates a new user with the admin role.
func (h *AdminHandler) HandleCreateAdmin(c *fiber.Ctx) error {
	var req createAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	user, err := h.adminService.CreateAdmin(req.Email, req.Password, req.Name)
	if err != nil {
		log.Printf("Error creating admin: %v", err)
		return respondError(c, "Could not create admin", err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleMakeUserAdmin promotes an existing user to the admin role.
func (h *AdminHandler) HandleMakeUserAdmin(c *fiber.Ctx) error {
	user, err := h.adminService.MakeUserAdmin(c.Params("id"))
	if err != nil {
		log.Printf("Error promoting user %s: %v", c.Params("id"), err)
		return respondError(c, "Could not promote user", err)
	}
	return c.JSON(user)
}
