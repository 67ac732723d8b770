package handlers

import (
	"github.com/max25782/server/internal/middleware"
	"github.com/max25782/server/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for the authenticated user's profile and
// favorites.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes registers the user profile routes; all of them require
// authentication.
func (h *UserHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	users := router.Group("/users", auth)
	users.Get("/profile", h.HandleGetProfile)
	users.Get("/profile/favorites", h.HandleGetFavorites)
	users.Patch("/profile/favorites/:productId", h.HandleToggleFavorite)
	users.Post("/profile/favorites", h.HandleToggleFavoriteBody)
}

// HandleGetProfile returns the authenticated user's profile.
func (h *UserHandler) HandleGetProfile(c *fiber.Ctx) error {
	user, err := h.service.GetProfile(middleware.UserID(c))
	if err != nil {
		return respondError(c, "Could not retrieve profile", err)
	}
	return c.JSON(user)
}

// HandleGetFavorites returns the authenticated user's favorite products.
func (h *UserHandler) HandleGetFavorites(c *fiber.Ctx) error {
	favorites, err := h.service.GetFavorites(middleware.UserID(c))
	if err != nil {
		return respondError(c, "Could not retrieve favorites", err)
	}
	return c.JSON(favorites)
}

// HandleToggleFavorite toggles the product given in the path.
func (h *UserHandler) HandleToggleFavorite(c *fiber.Ctx) error {
	return h.toggleFavorite(c, c.Params("productId"))
}

// HandleToggleFavoriteBody toggles the product given in the request body.
func (h *UserHandler) HandleToggleFavoriteBody(c *fiber.Ctx) error {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	return h.toggleFavorite(c, req.ProductID)
}

func (h *UserHandler) toggleFavorite(c *fiber.Ctx, productID string) error {
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "productId is required",
		})
	}
	user, err := h.service.ToggleFavorite(middleware.UserID(c), productID)
	if err != nil {
		return respondError(c, "Could not toggle favorite", err)
	}
	return c.JSON(user)
}
