package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jiannachen/ai-magellan-sub001/models"
	"github.com/jiannachen/ai-magellan-sub001/utils"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sortableColumns is the allowlist of columns a SortSpec may order by.
var sortableColumns = map[string]bool{
	models.SortColumnID:           true,
	models.SortColumnCreatedAt:    true,
	models.SortColumnVisits:       true,
	models.SortColumnLikes:        true,
	models.SortColumnQualityScore: true,
	models.SortColumnTitle:        true,
}

// WebsiteRepositoryImpl implements the WebsiteRepository interface
type WebsiteRepositoryImpl struct {
	*BaseRepository
}

// NewWebsiteRepository creates a new website repository
func NewWebsiteRepository(db *gorm.DB) WebsiteRepository {
	return &WebsiteRepositoryImpl{BaseRepository: NewBaseRepository(db)}
}

// ByID retrieves a website by ID with its category preloaded
func (r *WebsiteRepositoryImpl) ByID(ctx context.Context, id uint) (*models.Website, error) {
	db := r.getDB(ctx)

	var website models.Website
	err := db.Preload("Category").Last(&website, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &website, nil
}

// BySlug retrieves a website by slug
func (r *WebsiteRepositoryImpl) BySlug(ctx context.Context, slug string) (*models.Website, error) {
	filter := models.WebsiteFilter{Slug: &slug}
	websites, err := r.ByFilter(ctx, filter, models.SortSpec{}, 1, 0)
	if err != nil {
		return nil, err
	}

	if len(websites) == 0 {
		return nil, nil
	}

	return websites[0], nil
}

// ByFilter retrieves websites based on filter criteria with deterministic ordering
func (r *WebsiteRepositoryImpl) ByFilter(ctx context.Context, filter models.WebsiteFilter, sort models.SortSpec, limit, offset int) ([]*models.Website, error) {
	db := r.getDB(ctx)

	var websites []*models.Website
	query := r.applyFilter(db, filter)
	query = r.applySort(query, sort)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	// Category is decorated onto results by the assembler; one preload, not
	// one query per row.
	query = query.Preload("Category")

	err := query.Find(&websites).Error
	if err != nil {
		return nil, err
	}

	return websites, nil
}

// Count returns the number of websites matching the filter
func (r *WebsiteRepositoryImpl) Count(ctx context.Context, filter models.WebsiteFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	query := r.applyFilter(db.Model(&models.Website{}), filter)

	err := query.Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Exists checks if any website matching the filter exists
func (r *WebsiteRepositoryImpl) Exists(ctx context.Context, filter models.WebsiteFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Save inserts a new website
func (r *WebsiteRepositoryImpl) Save(ctx context.Context, website *models.Website) error {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	err = db.Create(website).Error
	if err != nil {
		return fmt.Errorf("failed to save website: %w", err)
	}

	return nil
}

// UpdateStatus updates only the moderation status of a website
func (r *WebsiteRepositoryImpl) UpdateStatus(ctx context.Context, id uint, status models.WebsiteStatus) error {
	db := r.getDB(ctx)
	return db.Model(&models.Website{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": utils.UTCNow(),
		}).Error
}

// IncrementVisits atomically increments the visit counter. This write path is
// independent from search reads; pagination tolerates the counter drifting
// between a count query and a page query.
func (r *WebsiteRepositoryImpl) IncrementVisits(ctx context.Context, id uint) error {
	db := r.getDB(ctx)
	return db.Model(&models.Website{}).
		Where("id = ?", id).
		UpdateColumn("visits", gorm.Expr("visits + 1")).Error
}

// IncrementLikes atomically increments the like counter
func (r *WebsiteRepositoryImpl) IncrementLikes(ctx context.Context, id uint) error {
	db := r.getDB(ctx)
	return db.Model(&models.Website{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1")).Error
}

// ApprovedCountsByCategory returns a map of category_id -> approved website
// count. Each website is counted once, under its own category only; subtree
// rollup happens over the in-memory tree so ancestors never double-count.
func (r *WebsiteRepositoryImpl) ApprovedCountsByCategory(ctx context.Context) (map[uint]int64, error) {
	type row struct {
		CategoryID uint
		Total      int64
	}
	var rows []row
	db := r.getDB(ctx)
	if err := db.Table("websites").
		Select("category_id, COUNT(*) AS total").
		Where("status = ?", models.WebsiteStatusApproved).
		Group("category_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[uint]int64, len(rows))
	for _, r := range rows {
		out[r.CategoryID] = r.Total
	}
	return out, nil
}

// applyFilter applies filter conditions to the GORM query
func (r *WebsiteRepositoryImpl) applyFilter(db *gorm.DB, filter models.WebsiteFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		db = db.Where("uuid = ?", *filter.UUID)
	}
	if filter.Slug != nil {
		db = db.Where("slug = ?", *filter.Slug)
	}
	if filter.Status != nil {
		db = db.Where("status = ?", *filter.Status)
	}
	if filter.Query != nil && *filter.Query != "" {
		pattern := "%" + escapeLikeWildcards(*filter.Query) + "%"
		db = db.Where("(title ILIKE ? OR tagline ILIKE ? OR description ILIKE ?)", pattern, pattern, pattern)
	}
	if len(filter.CategoryIDs) > 0 {
		db = db.Where("category_id IN ?", filter.CategoryIDs)
	}
	if len(filter.PricingModels) > 0 {
		db = db.Where("pricing_model IN ?", filter.PricingModels)
	}
	if filter.MinQualityScore != nil {
		db = db.Where("quality_score >= ?", *filter.MinQualityScore)
	}
	if filter.IsTrusted != nil {
		db = db.Where("is_trusted = ?", *filter.IsTrusted)
	}
	if filter.IsFeatured != nil {
		db = db.Where("is_featured = ?", *filter.IsFeatured)
	}
	if filter.SSLEnabled != nil {
		db = db.Where("ssl_enabled = ?", *filter.SSLEnabled)
	}
	if filter.HasFreePlan != nil {
		if *filter.HasFreePlan {
			db = db.Where("(pricing_model = ? OR has_free_version = TRUE)", models.PricingModelFree)
		} else {
			db = db.Where("pricing_model <> ? AND has_free_version = FALSE", models.PricingModelFree)
		}
	}
	if len(filter.Tags) > 0 {
		db = db.Where("jsonb_exists_any(tags, ?)", pq.Array(filter.Tags))
	}
	if filter.CreatedAfter != nil {
		db = db.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		db = db.Where("created_at < ?", *filter.CreatedBefore)
	}

	return db
}

// applySort applies the sort specification to the GORM query. Unknown columns
// are skipped, never interpolated.
func (r *WebsiteRepositoryImpl) applySort(db *gorm.DB, sort models.SortSpec) *gorm.DB {
	if sort.RelevanceQuery != "" {
		pattern := "%" + escapeLikeWildcards(sort.RelevanceQuery) + "%"
		db = db.Clauses(clause.OrderBy{
			Expression: clause.Expr{
				SQL:                "CASE WHEN title ILIKE ? THEN 3 WHEN tagline ILIKE ? THEN 2 WHEN description ILIKE ? THEN 1 ELSE 0 END DESC",
				Vars:               []any{pattern, pattern, pattern},
				WithoutParentheses: true,
			},
		})
	}
	for _, key := range sort.Keys {
		if !sortableColumns[key.Column] {
			continue
		}
		direction := "ASC"
		if key.Desc {
			direction = "DESC"
		}
		db = db.Order(fmt.Sprintf("%s %s", key.Column, direction))
	}
	return db
}
