// Package businessflow contains use cases for the category tree
package businessflow

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/jiannachen/ai-magellan-sub001/app/dto"
	"github.com/jiannachen/ai-magellan-sub001/models"
	"github.com/jiannachen/ai-magellan-sub001/repository"
	"github.com/redis/go-redis/v9"
)

const categoryTreeCacheKey = "catalog:categories:tree"

// CategoryFlow defines operations for the category tree with tool counts
type CategoryFlow interface {
	ListCategories(ctx context.Context, metadata *ClientMetadata) (*dto.ListCategoriesResponse, error)
	InvalidateCache(ctx context.Context) error
}

// CategoryFlowImpl caches the assembled tree in Redis. The cache is an
// explicit dependency with explicit invalidation, not ambient shared state;
// rc may be nil when caching is disabled.
type CategoryFlowImpl struct {
	categoryRepo repository.CategoryRepository
	websiteRepo  repository.WebsiteRepository
	rc           *redis.Client
	cacheTTL     time.Duration
}

func NewCategoryFlow(categoryRepo repository.CategoryRepository, websiteRepo repository.WebsiteRepository, rc *redis.Client, cacheTTL time.Duration) CategoryFlow {
	return &CategoryFlowImpl{
		categoryRepo: categoryRepo,
		websiteRepo:  websiteRepo,
		rc:           rc,
		cacheTTL:     cacheTTL,
	}
}

// ListCategories returns the category tree with aggregated tool counts.
// A node's count is its own approved websites plus its descendants', each
// website counted once at its own category.
func (f *CategoryFlowImpl) ListCategories(ctx context.Context, metadata *ClientMetadata) (resp *dto.ListCategoriesResponse, err error) {
	defer func() {
		if err != nil {
			err = NewBusinessError("LIST_CATEGORIES_FAILED", "Failed to list categories", err)
		}
	}()

	// try cache first
	if f.rc != nil {
		if bs, cacheErr := f.rc.Get(ctx, categoryTreeCacheKey).Bytes(); cacheErr == nil && len(bs) > 0 {
			var cached dto.ListCategoriesResponse
			if json.Unmarshal(bs, &cached) == nil {
				return &cached, nil
			}
		}
	}

	categories, err := f.categoryRepo.ByFilter(ctx, models.CategoryFilter{}, "sort_order ASC, id ASC", 0, 0)
	if err != nil {
		return nil, err
	}

	counts, err := f.websiteRepo.ApprovedCountsByCategory(ctx)
	if err != nil {
		return nil, err
	}

	response := &dto.ListCategoriesResponse{
		Categories: buildCategoryTree(categories, counts),
	}

	if f.rc != nil {
		if bs, marshalErr := json.Marshal(response); marshalErr == nil {
			_ = f.rc.Set(ctx, categoryTreeCacheKey, bs, f.cacheTTL).Err()
		}
	}

	return response, nil
}

// InvalidateCache drops the cached tree; callers invoke it when approved
// website counts change.
func (f *CategoryFlowImpl) InvalidateCache(ctx context.Context) error {
	if f.rc == nil {
		return nil
	}
	return f.rc.Del(ctx, categoryTreeCacheKey).Err()
}

// buildCategoryTree assembles nested category items and rolls subtree counts
// up to each ancestor. Children are ordered by sort_order then id.
func buildCategoryTree(categories []*models.Category, counts map[uint]int64) []dto.CategoryItem {
	childrenOf := make(map[uint][]*models.Category)
	var roots []*models.Category
	for _, c := range categories {
		if c.ParentID == nil {
			roots = append(roots, c)
		} else {
			childrenOf[*c.ParentID] = append(childrenOf[*c.ParentID], c)
		}
	}

	var build func(c *models.Category) dto.CategoryItem
	build = func(c *models.Category) dto.CategoryItem {
		item := dto.CategoryItem{
			ID:        c.ID,
			Name:      c.Name,
			Slug:      c.Slug,
			ParentID:  c.ParentID,
			SortOrder: c.SortOrder,
			ToolCount: counts[c.ID],
		}
		for _, child := range sortCategories(childrenOf[c.ID]) {
			childItem := build(child)
			item.ToolCount += childItem.ToolCount
			item.Children = append(item.Children, childItem)
		}
		return item
	}

	items := make([]dto.CategoryItem, 0, len(roots))
	for _, root := range sortCategories(roots) {
		items = append(items, build(root))
	}
	return items
}

func sortCategories(categories []*models.Category) []*models.Category {
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].SortOrder != categories[j].SortOrder {
			return categories[i].SortOrder < categories[j].SortOrder
		}
		return categories[i].ID < categories[j].ID
	})
	return categories
}
