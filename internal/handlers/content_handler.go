package handlers

import (
	"errors"

	"github.com/creatorhub/creator-platform/internal/authz"
	"github.com/creatorhub/creator-platform/internal/dto"
	"github.com/creatorhub/creator-platform/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ContentHandler struct {
	contentService *services.ContentService
}

func NewContentHandler(contentService *services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

func (h *ContentHandler) List(c *fiber.Ctx) error {
	query := services.ParseContentQuery(c.Queries())

	contents, total, err := h.contentService.List(query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Failed to fetch content",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(contents),
		"pagination": dto.Pagination{
			Page:       query.Page,
			Limit:      query.Limit,
			TotalPages: dto.TotalPages(total, query.Limit),
		},
		"data": contents,
	})
}

func (h *ContentHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid content ID",
		})
	}

	content, err := h.contentService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Error: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Failed to fetch content",
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": content})
}

func (h *ContentHandler) Create(c *fiber.Ctx) error {
	userID, err := authz.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Error: "Not authorized to access this route",
		})
	}

	var req dto.CreateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid request body",
		})
	}

	content, err := h.contentService.Create(userID, &req)
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
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": content})
}

func (h *ContentHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid content ID",
		})
	}

	userID, err := authz.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Error: "Not authorized to access this route",
		})
	}

	var req dto.UpdateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid request body",
		})
	}

	content, err := h.contentService.Update(userID, authz.Role(c), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrContentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Error: err.Error(),
			})
		case errors.Is(err, services.ErrNotContentOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Success: false, Error: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": content})
}

func (h *ContentHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid content ID",
		})
	}

	userID, err := authz.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Error: "Not authorized to access this route",
		})
	}

	if err := h.contentService.Delete(userID, authz.Role(c), id); err != nil {
		switch {
		case errors.Is(err, services.ErrContentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Error: err.Error(),
			})
		case errors.Is(err, services.ErrNotContentOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Success: false, Error: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Failed to delete content",
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{}})
}

func (h *ContentHandler) Like(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid content ID",
		})
	}

	content, err := h.contentService.Like(id)
	if err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Error: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Failed to like content",
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": content})
}
