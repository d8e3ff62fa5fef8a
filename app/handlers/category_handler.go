package handlers

import (
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/jiannachen/ai-magellan-sub001/app/dto"
	businessflow "github.com/jiannachen/ai-magellan-sub001/business_flow"
)

type CategoryHandlerInterface interface {
	ListCategories(c fiber.Ctx) error
}

type CategoryHandler struct {
	flow businessflow.CategoryFlow
}

func NewCategoryHandler(flow businessflow.CategoryFlow) CategoryHandlerInterface {
	return &CategoryHandler{flow: flow}
}

func (h *CategoryHandler) ErrorResponse(c fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Error:   message,
	})
}

func (h *CategoryHandler) SuccessResponse(c fiber.Ctx, statusCode int, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{Success: true, Data: data})
}

// ListCategories returns the category tree with aggregated tool counts
// @Summary List Categories
// @Tags Categories
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ListCategoriesResponse}
// @Router /api/categories [get]
func (h *CategoryHandler) ListCategories(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.flow.ListCategories(createRequestContext(c, "/api/categories"), metadata)
	if err != nil {
		log.Println("List categories failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list categories")
	}

	return h.SuccessResponse(c, fiber.StatusOK, result)
}
