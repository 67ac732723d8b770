package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/max25782/server/internal/models"
	"github.com/max25782/server/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// UserFields is the safe subset of a user returned with tokens.
type UserFields struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthResponse is returned on register, login and token refresh.
type AuthResponse struct {
	User         UserFields `json:"user"`
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
}

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		accessTTL:  time.Hour,
		refreshTTL: 7 * 24 * time.Hour,
	}
}

// Register creates a new user with a hashed password and returns fresh
// tokens. The display name defaults to the email's local part.
func (s *AuthService) Register(email, password string) (*AuthResponse, error) {
	if existingUser, err := s.userRepo.GetByEmail(email); err == nil && existingUser != nil {
		return nil, fmt.Errorf("email %q already registered: %w", email, repositories.ErrConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:      email,
		Name:       displayNameFromEmail(email),
		Password:   string(hashedPassword),
		AvatarPath: "/uploads/avatars/default.png",
		Role:       models.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return s.issueTokens(user)
}

// Login authenticates a user by email and password.
func (s *AuthService) Login(email, password string) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		// Do not reveal whether the email exists.
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	return s.issueTokens(user)
}

// RefreshTokens validates a refresh token and issues a fresh pair for its
// user.
func (s *AuthService) RefreshTokens(refreshToken string) (*AuthResponse, error) {
	claims, err := s.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	userID, _ := claims["id"].(string)
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("invalid token: user no longer exists")
		}
		return nil, err
	}
	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *models.User) (*AuthResponse, error) {
	accessToken, err := s.signToken(user, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.signToken(user, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		User:         UserFields{ID: user.ID, Email: user.Email},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthService) signToken(user *models.User, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if
// valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

func displayNameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
