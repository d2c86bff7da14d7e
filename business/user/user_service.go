package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"clientCompass/domain"
	redisrepo "clientCompass/internal/repository/redis"
	"clientCompass/pkg/logger"
	"clientCompass/pkg/utils"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// TokenStore contract interface (Redis-backed)
type TokenStore interface {
	StoreToken(ctx context.Context, userID, token string, data redisrepo.TokenData, ttl time.Duration) error
	ValidateToken(ctx context.Context, token string) (string, error)
	DeleteToken(ctx context.Context, userID, token string) error
}

const (
	RoleAnalyst = "analyst"
	RoleAdmin   = "admin"

	tokenTTL = 24 * time.Hour
)

type userService struct {
	userRepo   UserRepository
	validate   *validator.Validate
	tokenStore TokenStore
}

func NewUserService(
	userRepo UserRepository,
	validate *validator.Validate,
	tokenStore TokenStore,
) *userService {
	return &userService{
		userRepo:   userRepo,
		validate:   validate,
		tokenStore: tokenStore,
	}
}

func (s *userService) Register(ctx context.Context, user *domain.User) (domain.User, error) {
	if err := s.validate.Var(user.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", "error", err)
		return domain.User{}, errors.New("invalid email format")
	}

	if err := s.validate.Var(user.Password, "required,min=6"); err != nil {
		return domain.User{}, errors.New("password must be at least 6 characters")
	}

	if _, err := s.userRepo.FindByEmail(ctx, user.Email); err == nil {
		return domain.User{}, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)

	if user.Role == "" {
		user.Role = RoleAnalyst
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	created := *user
	created.Password = ""

	return created, nil
}

func (s *userService) Login(ctx context.Context, email, password, ipAddress, userAgent string) (string, domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", domain.User{}, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", domain.User{}, errors.New("invalid email or password")
	}

	userID := strconv.FormatUint(uint64(user.ID), 10)

	token, err := utils.GenerateJWT(userID, user.Role)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("failed to generate token: %w", err)
	}

	if s.tokenStore != nil {
		now := time.Now()
		data := redisrepo.TokenData{
			UserID:    userID,
			Role:      user.Role,
			Token:     token,
			IssuedAt:  now,
			ExpiresAt: now.Add(tokenTTL),
			IPAddress: ipAddress,
			UserAgent: userAgent,
		}

		if err := s.tokenStore.StoreToken(ctx, userID, token, data, tokenTTL); err != nil {
			logger.Error("Failed to store token in Redis", "error", err)
			return "", domain.User{}, fmt.Errorf("failed to store session: %w", err)
		}
	}

	user.Password = ""

	return token, user, nil
}

func (s *userService) ValidateTokenFromRedis(ctx context.Context, token string) (string, error) {
	if s.tokenStore == nil {
		return "", errors.New("token store is not configured")
	}

	return s.tokenStore.ValidateToken(ctx, token)
}

func (s *userService) Logout(ctx context.Context, userID uint, token string) error {
	if s.tokenStore == nil {
		return nil
	}

	id := strconv.FormatUint(uint64(userID), 10)

	if err := s.tokenStore.DeleteToken(ctx, id, token); err != nil {
		return fmt.Errorf("failed to invalidate session: %w", err)
	}

	return nil
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	user.Password = ""

	return user, nil
}
