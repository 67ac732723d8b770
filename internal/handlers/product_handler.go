package handlers

import (
	"log"

	"github.com/max25782/server/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes. Reads are public; writes
// require the admin role.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth, admin fiber.Handler) {
	products := router.Group("/products")
	products.Get("/", h.HandleGetProducts)
	products.Get("/by-slug/:slug", h.HandleGetProductBySlug)
	products.Get("/by-category/:categorySlug", h.HandleGetProductsByCategory)
	products.Get("/:id", h.HandleGetProductByID)

	adminRoutes := products.Group("", auth, admin)
	adminRoutes.Post("/", h.HandleCreateProduct)
	adminRoutes.Put("/:id", h.HandleUpdateProduct)
	adminRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products, optionally filtered by the
// searchTerm query parameter.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.Query("searchTerm"))
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return respondError(c, "Could not retrieve products", err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return respondError(c, "Could not retrieve product", err)
	}
	return c.JSON(product)
}

// HandleGetProductBySlug retrieves a single product by its slug.
func (h *ProductHandler) HandleGetProductBySlug(c *fiber.Ctx) error {
	product, err := h.service.GetProductBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, "Could not retrieve product", err)
	}
	return c.JSON(product)
}

// HandleGetProductsByCategory retrieves all products in a category.
func (h *ProductHandler) HandleGetProductsByCategory(c *fiber.Ctx) error {
	products, err := h.service.GetProductsByCategory(c.Params("categorySlug"))
	if err != nil {
		return respondError(c, "Could not retrieve products", err)
	}
	return c.JSON(products)
}

// HandleCreateProduct creates an empty draft product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	product, err := h.service.CreateProduct()
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return respondError(c, "Could not create product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var input services.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return respondValidationErrors(c, err)
	}

	product, err := h.service.UpdateProduct(c.Params("id"), input)
	if err != nil {
		log.Printf("Error updating product %s: %v", c.Params("id"), err)
		return respondError(c, "Could not update product", err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("id")); err != nil {
		return respondError(c, "Could not delete product", err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}
