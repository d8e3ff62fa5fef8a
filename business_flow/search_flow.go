// Package businessflow contains use cases for catalog search
package businessflow

import (
	"context"

	"github.com/jiannachen/ai-magellan-sub001/app/dto"
	"github.com/jiannachen/ai-magellan-sub001/repository"
)

// SearchFlow defines the use case for free-text catalog search
type SearchFlow interface {
	SearchWebsites(ctx context.Context, req *dto.SearchWebsitesRequest, metadata *ClientMetadata) (*dto.SearchWebsitesResponse, error)
}

// SearchFlowImpl is stateless and safe for concurrent use; every call derives
// its predicate set and sort specification from the request alone.
type SearchFlowImpl struct {
	websiteRepo  repository.WebsiteRepository
	categoryRepo repository.CategoryRepository
}

func NewSearchFlow(websiteRepo repository.WebsiteRepository, categoryRepo repository.CategoryRepository) SearchFlow {
	return &SearchFlowImpl{
		websiteRepo:  websiteRepo,
		categoryRepo: categoryRepo,
	}
}

// SearchWebsites runs one search request: compile filters, fetch the page,
// count with the identical predicate, assemble, and attach page metadata.
// A store failure returns an error and no partial page.
func (f *SearchFlowImpl) SearchWebsites(ctx context.Context, req *dto.SearchWebsitesRequest, metadata *ClientMetadata) (resp *dto.SearchWebsitesResponse, err error) {
	defer func() {
		if err != nil {
			err = NewBusinessError("SEARCH_WEBSITES_FAILED", "Failed to search websites", err)
		}
	}()

	page := NormalizePage(req.Page)
	limit := NormalizeLimit(req.Limit)

	categoryIDs, err := resolveCategorySubtree(ctx, f.categoryRepo, req.Category)
	if err != nil {
		return nil, err
	}

	filter := CompileSearchFilter(req, categoryIDs)
	sort := ResolveSearchSort(req.SortBy, req.SortOrder, valueOrEmpty(filter.Query))

	websites, err := f.websiteRepo.ByFilter(ctx, filter, sort, limit, PageOffset(page, limit))
	if err != nil {
		return nil, err
	}

	// Same filter value as the page fetch; the counters may drift between the
	// two queries, the predicate must not.
	total, err := f.websiteRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.SearchWebsitesResponse{
		Websites:   AssembleWebsiteItems(websites),
		Pagination: BuildPagination(page, limit, total),
	}, nil
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
