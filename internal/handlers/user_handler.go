package handlers

import (
	"errors"

	"github.com/creatorhub/creator-platform/internal/authz"
	"github.com/creatorhub/creator-platform/internal/dto"
	"github.com/creatorhub/creator-platform/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List is admin-gated by route middleware. Passwords never serialize.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Failed to fetch users",
		})
	}
	return c.JSON(fiber.Map{"success": true, "count": len(users), "data": users})
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid user ID",
		})
	}

	actorID, _ := authz.UserID(c)
	if !authz.OwnerOrAdmin(actorID, authz.Role(c), id) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Success: false, Error: "Not authorized to access this user data",
		})
	}

	user, err := h.userService.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Success: false, Error: err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": user})
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid user ID",
		})
	}

	actorID, _ := authz.UserID(c)
	if !authz.OwnerOrAdmin(actorID, authz.Role(c), id) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Success: false, Error: "Not authorized to update this user",
		})
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid request body",
		})
	}

	user, err := h.userService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Error: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": user})
}

// Delete is admin-gated by route middleware; self-delete is still refused.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid user ID",
		})
	}

	actorID, _ := authz.UserID(c)
	if err := h.userService.Delete(actorID, id); err != nil {
		switch {
		case errors.Is(err, services.ErrSelfDelete):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Error: "Admin cannot delete their own account",
			})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Error: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Failed to delete user",
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{}})
}

// UpdateCredits sets the balance directly; self or admin.
func (h *UserHandler) UpdateCredits(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid user ID",
		})
	}

	actorID, _ := authz.UserID(c)
	if !authz.OwnerOrAdmin(actorID, authz.Role(c), id) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Success: false, Error: "Not authorized to update credits",
		})
	}

	var req dto.UpdateCreditsRequest
	if err := c.BodyParser(&req); err != nil || req.Credits == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Credits must be a number",
		})
	}

	user, err := h.userService.SetCredits(id, *req.Credits)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Error: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Failed to update credits",
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": user})
}

// AdminUpdate may change name, email, role, and adjust credits by delta
// with a recorded admin_adjustment transaction.
func (h *UserHandler) AdminUpdate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid user ID",
		})
	}

	actorID, _ := authz.UserID(c)
	actor, err := h.userService.Get(actorID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Error: "Not authorized to access this route",
		})
	}

	var req dto.AdminUpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid request body",
		})
	}

	user, err := h.userService.AdminUpdate(actor, id, &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Error: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": user})
}
