package handlers

import (
	"errors"
	"strings"

	"github.com/creatorhub/creator-platform/internal/authz"
	"github.com/creatorhub/creator-platform/internal/dto"
	"github.com/creatorhub/creator-platform/internal/feed"
	"github.com/creatorhub/creator-platform/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type FeedHandler struct {
	aggregator    *feed.Aggregator
	reportService *services.ReportService
}

func NewFeedHandler(aggregator *feed.Aggregator, reportService *services.ReportService) *FeedHandler {
	return &FeedHandler{aggregator: aggregator, reportService: reportService}
}

// Feed returns the merged, recency-sorted multi-source feed. Provider
// outages are absorbed into fallback content and never surface here.
func (h *FeedHandler) Feed(c *fiber.Ctx) error {
	var sources []string
	if raw := c.Query("sources"); raw != "" {
		sources = strings.Split(raw, ",")
	}
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	result := h.aggregator.Feed(c.Context(), sources, page, limit)

	return c.JSON(fiber.Map{
		"success": true,
		"count":   result.Total,
		"pagination": dto.Pagination{
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
		"data": result.Items,
	})
}

func (h *FeedHandler) Save(c *fiber.Ctx) error {
	userID, err := authz.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Error: "Not authorized to access this route",
		})
	}

	var req dto.SaveContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid request body",
		})
	}

	saved, already, err := h.reportService.Save(userID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: err.Error(),
		})
	}
	if already {
		return c.JSON(fiber.Map{"success": true, "message": "Content already saved", "data": saved})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": saved})
}

func (h *FeedHandler) ListSaved(c *fiber.Ctx) error {
	userID, err := authz.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Error: "Not authorized to access this route",
		})
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	saved, total, err := h.reportService.ListSaved(userID, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Failed to fetch saved content",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   total,
		"pagination": dto.Pagination{
			Page:       page,
			Limit:      limit,
			TotalPages: dto.TotalPages(total, limit),
		},
		"data": saved,
	})
}

func (h *FeedHandler) DeleteSaved(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid saved content ID",
		})
	}

	userID, err := authz.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Error: "Not authorized to access this route",
		})
	}

	if err := h.reportService.DeleteSaved(userID, authz.Role(c), id); err != nil {
		switch {
		case errors.Is(err, services.ErrSavedNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Error: err.Error(),
			})
		case errors.Is(err, services.ErrNotSaveOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Success: false, Error: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Failed to delete saved content",
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{}})
}

// Report files a report against an external feed item.
func (h *FeedHandler) Report(c *fiber.Ctx) error {
	userID, err := authz.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Error: "Not authorized to access this route",
		})
	}

	var req dto.ReportContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid request body",
		})
	}

	report, already, err := h.reportService.Report(userID, req.ContentID, req.Platform, req.Reason, req.Details)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: err.Error(),
		})
	}
	if already {
		return c.JSON(fiber.Map{"success": true, "message": "Content already reported", "data": report})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": report})
}
