package services

import (
	"fmt"
	"time"

	"github.com/max25782/server/internal/models"
	"github.com/max25782/server/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AdminUser is the safe user view exposed through the admin panel.
type AdminUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AdminService handles user administration: listing, bootstrapping admins and
// promotions.
type AdminService struct {
	userRepo  repositories.UserRepository
	orderRepo repositories.OrderRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(userRepo repositories.UserRepository, orderRepo repositories.OrderRepository) *AdminService {
	return &AdminService{
		userRepo:  userRepo,
		orderRepo: orderRepo,
	}
}

func toAdminUser(user *models.User) *AdminUser {
	return &AdminUser{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// FindAllUsers lists every user with safe fields only.
func (s *AdminService) FindAllUsers() ([]AdminUser, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	result := make([]AdminUser, 0, len(users))
	for i := range users {
		result = append(result, *toAdminUser(&users[i]))
	}
	return result, nil
}

// FindAllOrders lists every order with full includes.
func (s *AdminService) FindAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// CreateAdmin creates a user with the admin role. Fails with a conflict if
// the email is already registered.
func (s *AdminService) CreateAdmin(email, password, name string) (*AdminUser, error) {
	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, fmt.Errorf("email %q already registered: %w", email, repositories.ErrConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Name:     name,
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return toAdminUser(user), nil
}

// MakeUserAdmin promotes an existing user to the admin role.
func (s *AdminService) MakeUserAdmin(userID string) (*AdminUser, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Role = models.RoleAdmin
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toAdminUser(user), nil
}
