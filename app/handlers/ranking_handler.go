package handlers

import (
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/jiannachen/ai-magellan-sub001/app/dto"
	"github.com/jiannachen/ai-magellan-sub001/app/middleware"
	businessflow "github.com/jiannachen/ai-magellan-sub001/business_flow"
)

type RankingHandlerInterface interface {
	GetRankings(c fiber.Ctx) error
}

type RankingHandler struct {
	flow businessflow.RankingFlow
}

func NewRankingHandler(flow businessflow.RankingFlow) RankingHandlerInterface {
	return &RankingHandler{flow: flow}
}

func (h *RankingHandler) ErrorResponse(c fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Error:   message,
	})
}

func (h *RankingHandler) SuccessResponse(c fiber.Ctx, statusCode int, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{Success: true, Data: data})
}

// GetRankings handles the named ranking views with infinite-scroll paging.
// An unknown type falls back to popular.
// @Summary Get Rankings
// @Tags Rankings
// @Produce json
// @Param type query string false "popular|top-rated|trending|free|new"
// @Param category query string false "Category slug (includes descendants)"
// @Param priceFilter query string false "Pricing model or all"
// @Param timeRange query string false "all|today|week|month"
// @Param searchQuery query string false "Free-text query within the view"
// @Param page query int false "1-based page number"
// @Param limit query int false "Page size, capped at 100"
// @Success 200 {object} dto.APIResponse{data=dto.GetRankingsResponse}
// @Router /api/rankings [get]
func (h *RankingHandler) GetRankings(c fiber.Ctx) error {
	req := &dto.GetRankingsRequest{
		Type:        c.Query("type"),
		Category:    c.Query("category"),
		PriceFilter: c.Query("priceFilter"),
		TimeRange:   c.Query("timeRange", businessflow.TimeRangeAll),
		SearchQuery: c.Query("searchQuery"),
		Page:        parseIntQuery(c, "page", 1),
		Limit:       parseIntQuery(c, "limit", 0),
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.flow.GetRankings(createRequestContext(c, "/api/rankings"), req, metadata)
	if err != nil {
		log.Println("Get rankings failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to get rankings")
	}

	middleware.ObserveResultCount(len(result.Websites))

	return h.SuccessResponse(c, fiber.StatusOK, result)
}
