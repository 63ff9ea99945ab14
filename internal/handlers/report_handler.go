package handlers

import (
	"errors"

	"github.com/creatorhub/creator-platform/internal/authz"
	"github.com/creatorhub/creator-platform/internal/dto"
	"github.com/creatorhub/creator-platform/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ReportInternal reports locally hosted content; the platform is forced
// to internal and the content row must exist.
func (h *ReportHandler) ReportInternal(c *fiber.Ctx) error {
	userID, err := authz.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Error: "Not authorized to access this route",
		})
	}

	var req dto.ReportInternalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid request body",
		})
	}

	report, already, err := h.reportService.ReportInternal(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Error: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: err.Error(),
		})
	}
	if already {
		return c.JSON(fiber.Map{"success": true, "message": "Content already reported", "data": report})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": report})
}

// List returns all reports with reporter identity joined in; admin only.
func (h *ReportHandler) List(c *fiber.Ctx) error {
	reports, err := h.reportService.ListReports()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Failed to fetch reports",
		})
	}
	return c.JSON(fiber.Map{"success": true, "count": len(reports), "data": reports})
}

// UpdateStatus transitions a report through the moderation workflow.
func (h *ReportHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid report ID",
		})
	}

	var req dto.UpdateReportStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid request body",
		})
	}

	report, err := h.reportService.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Error: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": report})
}
