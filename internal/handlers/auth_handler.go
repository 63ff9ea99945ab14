package handlers

import (
	"errors"

	"github.com/creatorhub/creator-platform/internal/authz"
	"github.com/creatorhub/creator-platform/internal/dto"
	"github.com/creatorhub/creator-platform/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid request body",
		})
	}

	user, token, err := h.authService.Register(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		Success: true, Token: token, User: user,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid request body",
		})
	}

	user, token, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Success: false, Error: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Login failed",
		})
	}

	return c.JSON(dto.AuthResponse{Success: true, Token: token, User: user})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := authz.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Error: "Not authorized to access this route",
		})
	}

	user, err := h.authService.Me(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Success: false, Error: err.Error(),
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": user})
}
