package handlers

import (
	"log"

	"github.com/max25782/server/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes. Reads are public; writes
// require the admin role.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, auth, admin fiber.Handler) {
	categories := router.Group("/categories")
	categories.Get("/", h.HandleGetCategories)
	categories.Get("/by-slug/:slug", h.HandleGetCategoryBySlug)
	categories.Get("/:id", h.HandleGetCategoryByID)

	adminRoutes := categories.Group("", auth, admin)
	adminRoutes.Post("/", h.HandleCreateCategory)
	adminRoutes.Put("/:id", h.HandleUpdateCategory)
	adminRoutes.Delete("/:id", h.HandleDeleteCategory)
}

// HandleGetCategories retrieves all categories.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		log.Printf("Error getting all categories: %v", err)
		return respondError(c, "Could not retrieve categories", err)
	}
	return c.JSON(categories)
}

// HandleGetCategoryByID retrieves a single category by its ID.
func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	category, err := h.service.GetCategoryByID(c.Params("id"))
	if err != nil {
		return respondError(c, "Could not retrieve category", err)
	}
	return c.JSON(category)
}

// HandleGetCategoryBySlug retrieves a single category by its slug.
func (h *CategoryHandler) HandleGetCategoryBySlug(c *fiber.Ctx) error {
	category, err := h.service.GetCategoryBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, "Could not retrieve category", err)
	}
	return c.JSON(category)
}

// HandleCreateCategory creates an empty draft category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	category, err := h.service.CreateCategory()
	if err != nil {
		log.Printf("Error creating category: %v", err)
		return respondError(c, "Could not create category", err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleUpdateCategory updates an existing category.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	var input services.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return respondValidationErrors(c, err)
	}

	category, err := h.service.UpdateCategory(c.Params("id"), input)
	if err != nil {
		log.Printf("Error updating category %s: %v", c.Params("id"), err)
		return respondError(c, "Could not update category", err)
	}
	return c.JSON(category)
}

// HandleDeleteCategory deletes a category by its ID.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	if err := h.service.DeleteCategory(c.Params("id")); err != nil {
		return respondError(c, "Could not delete category", err)
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}
