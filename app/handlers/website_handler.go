package handlers

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/jiannachen/ai-magellan-sub001/app/dto"
	businessflow "github.com/jiannachen/ai-magellan-sub001/business_flow"
)

// exportTimeout allows large catalogs to finish streaming
const exportTimeout = 2 * time.Minute

type WebsiteHandlerInterface interface {
	SubmitWebsite(c fiber.Ctx) error
	RecordVisit(c fiber.Ctx) error
	RecordLike(c fiber.Ctx) error
	ExportWebsites(c fiber.Ctx) error
}

type WebsiteHandler struct {
	submissionFlow businessflow.SubmissionFlow
	exportFlow     businessflow.ExportFlow
	validator      *validator.Validate
}

func NewWebsiteHandler(submissionFlow businessflow.SubmissionFlow, exportFlow businessflow.ExportFlow) WebsiteHandlerInterface {
	return &WebsiteHandler{
		submissionFlow: submissionFlow,
		exportFlow:     exportFlow,
		validator:      validator.New(),
	}
}

func (h *WebsiteHandler) ErrorResponse(c fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Error:   message,
	})
}

func (h *WebsiteHandler) SuccessResponse(c fiber.Ctx, statusCode int, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{Success: true, Data: data})
}

// SubmitWebsite accepts a new tool submission; entries start as pending and
// stay invisible to search and rankings until approved
// @Summary Submit Website
// @Tags Websites
// @Accept json
// @Produce json
// @Param request body dto.SubmitWebsiteRequest true "Submission payload"
// @Success 201 {object} dto.APIResponse{data=dto.SubmitWebsiteResponse}
// @Router /api/websites [post]
func (h *WebsiteHandler) SubmitWebsite(c fiber.Ctx) error {
	var req dto.SubmitWebsiteRequest
	if err := c.Bind().Body(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.validator.Struct(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
			return h.ErrorResponse(c, fiber.StatusBadRequest, getValidationErrorMessage(validationErrors[0]))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request")
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.submissionFlow.SubmitWebsite(createRequestContext(c, "/api/websites"), &req, metadata)
	if err != nil {
		if businessflow.IsCategoryNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Unknown category")
		}
		if businessflow.IsWebsiteSlugTaken(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, "Slug already exists")
		}

		log.Println("Submit website failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to submit website")
	}

	return h.SuccessResponse(c, fiber.StatusCreated, result)
}

// RecordVisit increments the visit counter of an approved website
// @Summary Record Visit
// @Tags Websites
// @Produce json
// @Param id path int true "Website ID"
// @Success 200 {object} dto.APIResponse
// @Router /api/websites/{id}/visit [post]
func (h *WebsiteHandler) RecordVisit(c fiber.Ctx) error {
	return h.recordCounter(c, "/api/websites/:id/visit", h.submissionFlow.RecordVisit)
}

// RecordLike increments the like counter of an approved website
// @Summary Record Like
// @Tags Websites
// @Produce json
// @Param id path int true "Website ID"
// @Success 200 {object} dto.APIResponse
// @Router /api/websites/{id}/like [post]
func (h *WebsiteHandler) RecordLike(c fiber.Ctx) error {
	return h.recordCounter(c, "/api/websites/:id/like", h.submissionFlow.RecordLike)
}

func (h *WebsiteHandler) recordCounter(c fiber.Ctx, endpoint string, record func(ctx context.Context, websiteID uint) error) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid website id")
	}

	if err := record(createRequestContext(c, endpoint), uint(id)); err != nil {
		if businessflow.IsWebsiteNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Website not found")
		}
		if businessflow.IsWebsiteNotApproved(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, "Website is not approved")
		}

		log.Println("Record counter failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to record counter")
	}

	return h.SuccessResponse(c, fiber.StatusOK, nil)
}

// ExportWebsites streams the approved catalog as a spreadsheet
// @Summary Export Websites
// @Tags Websites
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /api/websites/export [get]
func (h *WebsiteHandler) ExportWebsites(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	data, err := h.exportFlow.ExportApprovedWebsites(createRequestContextWithTimeout(c, "/api/websites/export", exportTimeout), metadata)
	if err != nil {
		log.Println("Export websites failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export websites")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="websites.xlsx"`)
	return c.Send(data)
}
