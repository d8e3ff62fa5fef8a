package handlers

import (
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/jiannachen/ai-magellan-sub001/app/dto"
	"github.com/jiannachen/ai-magellan-sub001/app/middleware"
	businessflow "github.com/jiannachen/ai-magellan-sub001/business_flow"
)

type SearchHandlerInterface interface {
	SearchWebsites(c fiber.Ctx) error
}

type SearchHandler struct {
	flow businessflow.SearchFlow
}

func NewSearchHandler(flow businessflow.SearchFlow) SearchHandlerInterface {
	return &SearchHandler{flow: flow}
}

func (h *SearchHandler) ErrorResponse(c fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Error:   message,
	})
}

func (h *SearchHandler) SuccessResponse(c fiber.Ctx, statusCode int, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{Success: true, Data: data})
}

// SearchWebsites handles free-text catalog search with combinable facet
// filters. Invalid parameter values are normalized, never rejected; the only
// failure surfaced to the client is store unavailability.
// @Summary Search Websites
// @Tags Search
// @Produce json
// @Param q query string false "Free-text query over title, tagline and description"
// @Param category query string false "Category slug (includes descendants)"
// @Param pricingModel query []string false "Pricing models, repeatable, OR-combined"
// @Param minQualityScore query int false "Inclusive quality score threshold, clamped to [0,100]"
// @Param sortBy query string false "relevance|created_at|visits|likes|quality_score|title"
// @Param sortOrder query string false "asc|desc"
// @Param page query int false "1-based page number"
// @Param limit query int false "Page size, capped at 100"
// @Success 200 {object} dto.APIResponse{data=dto.SearchWebsitesResponse}
// @Router /api/search [get]
func (h *SearchHandler) SearchWebsites(c fiber.Ctx) error {
	req := &dto.SearchWebsitesRequest{
		Query:           c.Query("q"),
		Category:        c.Query("category"),
		PricingModels:   parseMultiQuery(c, "pricingModel"),
		MinQualityScore: parseOptionalIntQuery(c, "minQualityScore"),
		IsTrusted:       parseBoolFlag(c, "isTrusted"),
		IsFeatured:      parseBoolFlag(c, "isFeatured"),
		HasFreePlan:     parseBoolFlag(c, "hasFreePlan"),
		SSLEnabled:      parseBoolFlag(c, "sslEnabled"),
		Tags:            parseMultiQuery(c, "tag"),
		SortBy:          c.Query("sortBy"),
		SortOrder:       c.Query("sortOrder"),
		Page:            parseIntQuery(c, "page", 1),
		Limit:           parseIntQuery(c, "limit", 0),
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.flow.SearchWebsites(createRequestContext(c, "/api/search"), req, metadata)
	if err != nil {
		log.Println("Search websites failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to search websites")
	}

	middleware.ObserveResultCount(len(result.Websites))

	return h.SuccessResponse(c, fiber.StatusOK, result)
}
