package rest

import (
	"context"
	"net/http"
	"time"

	"clientCompass/domain"
	"clientCompass/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type UserService interface {
	Register(ctx context.Context, user *domain.User) (domain.User, error)
	Login(ctx context.Context, email, password, ipAddress, userAgent string) (string, domain.User, error)
	ValidateTokenFromRedis(ctx context.Context, token string) (string, error)
	Logout(ctx context.Context, userID uint, token string) error
	GetUserByID(ctx context.Context, id uint) (domain.User, error)
}

type UserHandler struct {
	userService UserService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type UserRegisterRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UserLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var reqUser UserRegisterRequest

	if err := c.Bind(&reqUser); err != nil {
		logger.Error("Invalid request body", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&reqUser); err != nil {
		logger.Error("Failed to validate user register", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	user, err := h.userService.Register(ctx, &domain.User{
		FullName: reqUser.FullName,
		Email:    reqUser.Email,
		Password: reqUser.Password,
	})
	if err != nil {
		logger.Error("Failed to register user", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Registration successful",
		"user":    user,
	})
}

func (h *UserHandler) Login(c echo.Context) error {
	var reqUser UserLoginRequest

	if err := c.Bind(&reqUser); err != nil {
		logger.Error("Failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&reqUser); err != nil {
		logger.Error("Failed to validate user login", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	ipAddress := c.RealIP()
	userAgent := c.Request().UserAgent()

	token, user, err := h.userService.Login(ctx, reqUser.Email, reqUser.Password, ipAddress, userAgent)
	if err != nil {
		logger.Error("Failed to login with user", "error", err)
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// Logout handles user logout by invalidating token
func (h *UserHandler) Logout(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		logger.Error("Failed to get user_id from context")
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	token, ok := c.Get("token").(string)
	if !ok {
		logger.Error("Failed to get token from context")
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	err := h.userService.Logout(ctx, userID, token)
	if err != nil {
		logger.Error("Failed to logout user", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Logout successful",
	})
}

func (h *UserHandler) Me(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	user, err := h.userService.GetUserByID(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": user,
	})
}
