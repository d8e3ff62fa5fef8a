// Package businessflow contains use cases for the named ranking views
package businessflow

import (
	"context"

	"github.com/jiannachen/ai-magellan-sub001/app/dto"
	"github.com/jiannachen/ai-magellan-sub001/repository"
	"github.com/jiannachen/ai-magellan-sub001/utils"
)

// RankingFlow defines the use case for the named ranking views
type RankingFlow interface {
	GetRankings(ctx context.Context, req *dto.GetRankingsRequest, metadata *ClientMetadata) (*dto.GetRankingsResponse, error)
}

// RankingFlowImpl is stateless and safe for concurrent use
type RankingFlowImpl struct {
	websiteRepo  repository.WebsiteRepository
	categoryRepo repository.CategoryRepository
}

func NewRankingFlow(websiteRepo repository.WebsiteRepository, categoryRepo repository.CategoryRepository) RankingFlow {
	return &RankingFlowImpl{
		websiteRepo:  websiteRepo,
		categoryRepo: categoryRepo,
	}
}

// GetRankings computes one page of a named ranking view. Unknown types fall
// back to popular; that is a policy, not an error. The trending window
// excludes entries created before the window start regardless of their visit
// counts.
func (f *RankingFlowImpl) GetRankings(ctx context.Context, req *dto.GetRankingsRequest, metadata *ClientMetadata) (resp *dto.GetRankingsResponse, err error) {
	defer func() {
		if err != nil {
			err = NewBusinessError("GET_RANKINGS_FAILED", "Failed to get rankings", err)
		}
	}()

	page := NormalizePage(req.Page)
	limit := NormalizeLimit(req.Limit)
	rankingType := NormalizeRankingType(req.Type)

	categoryIDs, err := resolveCategorySubtree(ctx, f.categoryRepo, req.Category)
	if err != nil {
		return nil, err
	}

	filter := CompileRankingFilter(req, rankingType, categoryIDs, utils.UTCNow())
	sort := ResolveRankingSort(rankingType)

	websites, err := f.websiteRepo.ByFilter(ctx, filter, sort, limit, PageOffset(page, limit))
	if err != nil {
		return nil, err
	}

	total, err := f.websiteRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.GetRankingsResponse{
		Websites:   AssembleWebsiteItems(websites),
		Pagination: BuildPagination(page, limit, total),
	}, nil
}
