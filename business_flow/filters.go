package businessflow

import (
	"context"
	"strings"
	"time"

	"github.com/jiannachen/ai-magellan-sub001/app/dto"
	"github.com/jiannachen/ai-magellan-sub001/models"
	"github.com/jiannachen/ai-magellan-sub001/repository"
	"github.com/jiannachen/ai-magellan-sub001/utils"
)

// CompileSearchFilter turns parsed search parameters into a normalized
// predicate set. It never fails: unknown enum values are dropped, numeric
// bounds are clamped, and an empty query means "no text predicate".
//
// The approved-only status predicate is applied unconditionally and cannot be
// reached from request input.
func CompileSearchFilter(req *dto.SearchWebsitesRequest, categoryIDs []uint) models.WebsiteFilter {
	filter := models.WebsiteFilter{
		Status:      utils.ToPtr(models.WebsiteStatusApproved),
		CategoryIDs: categoryIDs,
	}

	if q := strings.TrimSpace(req.Query); q != "" {
		filter.Query = &q
	}

	filter.PricingModels = compilePricingModels(req.PricingModels)

	if req.MinQualityScore != nil {
		filter.MinQualityScore = utils.ToPtr(clampQualityScore(*req.MinQualityScore))
	}

	filter.IsTrusted = req.IsTrusted
	filter.IsFeatured = req.IsFeatured
	filter.HasFreePlan = req.HasFreePlan
	filter.SSLEnabled = req.SSLEnabled

	for _, tag := range req.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			filter.Tags = append(filter.Tags, tag)
		}
	}

	return filter
}

// CompileRankingFilter turns parsed ranking parameters into a normalized
// predicate set for the given (already normalized) ranking type. The time
// window bounds created_at; the free view constrains the catalog to entries
// with a free plan. Same permissive behavior as CompileSearchFilter.
func CompileRankingFilter(req *dto.GetRankingsRequest, rankingType string, categoryIDs []uint, now time.Time) models.WebsiteFilter {
	filter := models.WebsiteFilter{
		Status:      utils.ToPtr(models.WebsiteStatusApproved),
		CategoryIDs: categoryIDs,
	}

	if q := strings.TrimSpace(req.SearchQuery); q != "" {
		filter.Query = &q
	}

	if price := strings.TrimSpace(req.PriceFilter); price != "" && price != "all" {
		filter.PricingModels = compilePricingModels([]string{price})
	}

	filter.CreatedAfter = WindowStart(req.TimeRange, now)

	if rankingType == RankingTypeFree {
		filter.HasFreePlan = utils.ToPtr(true)
	}

	return filter
}

// compilePricingModels keeps known pricing models and drops the rest.
// Values are OR-combined by the repository.
func compilePricingModels(values []string) []models.PricingModel {
	var out []models.PricingModel
	for _, v := range values {
		model := models.PricingModel(strings.TrimSpace(v))
		if model.Valid() {
			out = append(out, model)
		}
	}
	return out
}

func clampQualityScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > utils.MaxQualityScore {
		return utils.MaxQualityScore
	}
	return score
}

// resolveCategorySubtree maps a category slug to the IDs of the category and
// all of its descendants. An unknown or empty slug yields nil, which the
// compiler treats as "no category constraint".
func resolveCategorySubtree(ctx context.Context, categoryRepo repository.CategoryRepository, slug string) ([]uint, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, nil
	}

	root, err := categoryRepo.BySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, nil
	}

	all, err := categoryRepo.ByFilter(ctx, models.CategoryFilter{}, "sort_order ASC, id ASC", 0, 0)
	if err != nil {
		return nil, err
	}

	childrenOf := make(map[uint][]uint, len(all))
	for _, c := range all {
		if c.ParentID != nil {
			childrenOf[*c.ParentID] = append(childrenOf[*c.ParentID], c.ID)
		}
	}

	ids := []uint{root.ID}
	for i := 0; i < len(ids); i++ {
		ids = append(ids, childrenOf[ids[i]]...)
	}
	return ids, nil
}
